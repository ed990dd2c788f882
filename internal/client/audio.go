package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// AudioClient implements openai.AudioClient.
type AudioClient struct {
	httpClient *http.Client
}

// NewAudioClient creates a new audio client.
func NewAudioClient(httpClient *http.Client) *AudioClient {
	return &AudioClient{httpClient: httpClient}
}

// CreateSpeech implements openai.AudioClient.CreateSpeech.
func (c *AudioClient) CreateSpeech(ctx context.Context, req *openai.CreateSpeechRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// CreateTranscription implements openai.AudioClient.CreateTranscription.
func (c *AudioClient) CreateTranscription(ctx context.Context, req *openai.CreateTranscriptionRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// CreateTranslation implements openai.AudioClient.CreateTranslation.
func (c *AudioClient) CreateTranslation(ctx context.Context, req *openai.CreateTranslationRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
