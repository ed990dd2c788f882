package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// ImagesClient implements openai.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

// Create implements openai.ImagesClient.Create.
func (c *ImagesClient) Create(ctx context.Context, req *openai.CreateImageRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Edit implements openai.ImagesClient.Edit.
func (c *ImagesClient) Edit(ctx context.Context, req *openai.CreateImageEditRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// CreateVariation implements openai.ImagesClient.CreateVariation.
func (c *ImagesClient) CreateVariation(ctx context.Context, req *openai.CreateImageVariationRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
