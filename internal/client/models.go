package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// ModelsClient implements openai.ModelsClient.
type ModelsClient struct {
	httpClient *http.Client
}

// NewModelsClient creates a new models client.
func NewModelsClient(httpClient *http.Client) *ModelsClient {
	return &ModelsClient{httpClient: httpClient}
}

// List implements openai.ModelsClient.List.
func (c *ModelsClient) List(ctx context.Context) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.ListModelsRequest{})
}

// Retrieve implements openai.ModelsClient.Retrieve.
func (c *ModelsClient) Retrieve(ctx context.Context, model string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.RetrieveModelRequest{Model: model})
}

// Delete implements openai.ModelsClient.Delete.
func (c *ModelsClient) Delete(ctx context.Context, model string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.DeleteModelRequest{Model: model})
}
