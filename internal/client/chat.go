package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// ChatClient implements openai.ChatClient.
type ChatClient struct {
	httpClient *http.Client
}

// NewChatClient creates a new chat client.
func NewChatClient(httpClient *http.Client) *ChatClient {
	return &ChatClient{httpClient: httpClient}
}

// Create implements openai.ChatClient.Create.
func (c *ChatClient) Create(ctx context.Context, req *openai.CreateChatCompletionRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
