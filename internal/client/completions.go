package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// CompletionsClient implements openai.CompletionsClient.
type CompletionsClient struct {
	httpClient *http.Client
}

// NewCompletionsClient creates a new completions client.
func NewCompletionsClient(httpClient *http.Client) *CompletionsClient {
	return &CompletionsClient{httpClient: httpClient}
}

// Create implements openai.CompletionsClient.Create.
func (c *CompletionsClient) Create(ctx context.Context, req *openai.CreateCompletionRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
