//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/fivetwenty-io/openai-client/pkg/openaiclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey  string
	BaseURL string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Verbose: os.Getenv("OPENAI_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("OPENAI_API_KEY not set, skipping integration test")
	}
}

// NewClient builds a client against the live API.
func (config *TestConfig) NewClient(t *testing.T) openai.Client {
	t.Helper()

	clientConfig := &openai.Config{
		BaseURL: config.BaseURL,
		APIKey:  config.APIKey,
		Timeout: 2 * time.Minute,
	}

	if config.Verbose {
		clientConfig.Debug = true
		clientConfig.Logger = openai.NewSlogLogger(nil)
	}

	client, err := openaiclient.New(context.Background(), clientConfig)
	require.NoError(t, err)

	return client
}
