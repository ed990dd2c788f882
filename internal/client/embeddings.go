package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// EmbeddingsClient implements openai.EmbeddingsClient.
type EmbeddingsClient struct {
	httpClient *http.Client
}

// NewEmbeddingsClient creates a new embeddings client.
func NewEmbeddingsClient(httpClient *http.Client) *EmbeddingsClient {
	return &EmbeddingsClient{httpClient: httpClient}
}

// Create implements openai.EmbeddingsClient.Create.
func (c *EmbeddingsClient) Create(ctx context.Context, req *openai.CreateEmbeddingsRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
