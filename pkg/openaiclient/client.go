package openaiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/openai-client/internal/client"
	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// New creates a new OpenAI API client. The config is copied; later changes to
// it do not affect the client. The API key is resolved once with ctx so that a
// failing APIKeyFunc is reported here rather than on the first request.
func New(ctx context.Context, config *openai.Config) (openai.Client, error) {
	if config == nil {
		return nil, openai.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	if normalized.Timeout <= 0 {
		normalized.Timeout = constants.DefaultHTTPTimeout
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	_, err = c.GetTokenManager().GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve API key: %w", err)
	}

	return c, nil
}

// normalizeBaseURL trims trailing slashes and adds "https://" when no scheme
// is present. An empty value selects the public API.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAPIKey creates a client for the public API authenticated with apiKey.
func NewWithAPIKey(ctx context.Context, apiKey string) (openai.Client, error) {
	return New(ctx, &openai.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a client for an OpenAI-compatible server at baseURL.
func NewWithBaseURL(ctx context.Context, baseURL, apiKey string) (openai.Client, error) {
	return New(ctx, &openai.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}
