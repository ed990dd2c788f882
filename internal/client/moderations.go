package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// ModerationsClient implements openai.ModerationsClient.
type ModerationsClient struct {
	httpClient *http.Client
}

// NewModerationsClient creates a new moderations client.
func NewModerationsClient(httpClient *http.Client) *ModerationsClient {
	return &ModerationsClient{httpClient: httpClient}
}

// Create implements openai.ModerationsClient.Create.
func (c *ModerationsClient) Create(ctx context.Context, req *openai.CreateModerationRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
