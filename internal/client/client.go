package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/openai-client/internal/auth"
	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// Client implements the openai.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	// Resource clients
	audio       *AudioClient
	batches     *BatchesClient
	chat        *ChatClient
	completions *CompletionsClient
	embeddings  *EmbeddingsClient
	files       *FilesClient
	fineTuning  *FineTuningClient
	images      *ImagesClient
	models      *ModelsClient
	moderations *ModerationsClient
	uploads     *UploadsClient
}

// New creates a client that authenticates with config.APIKeyFunc when set and
// config.APIKey otherwise.
func New(config *openai.Config) (*Client, error) {
	if config.APIKeyFunc != nil {
		return NewWithTokenManager(config, auth.TokenFunc(config.APIKeyFunc))
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(config.APIKey))
}

// NewWithTokenManager creates a client that takes its bearer token from
// tokenManager instead of config.APIKey.
func NewWithTokenManager(config *openai.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.BaseURL == "" {
		return nil, openai.ErrBaseURLRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *openai.Config) ([]http.Option, error) {
	httpOpts := []http.Option{
		http.WithHeader(constants.HeaderOrganization, config.Organization),
		http.WithHeader(constants.HeaderProject, config.Project),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	} else if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.MetricsRegisterer != nil {
		metrics, err := http.NewMetrics(config.MetricsRegisterer)
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}

		httpOpts = append(httpOpts, http.WithMetrics(metrics))
	}

	return httpOpts, nil
}

func (c *Client) initializeResourceClients() {
	c.audio = NewAudioClient(c.httpClient)
	c.batches = NewBatchesClient(c.httpClient)
	c.chat = NewChatClient(c.httpClient)
	c.completions = NewCompletionsClient(c.httpClient)
	c.embeddings = NewEmbeddingsClient(c.httpClient)
	c.files = NewFilesClient(c.httpClient)
	c.fineTuning = NewFineTuningClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.models = NewModelsClient(c.httpClient)
	c.moderations = NewModerationsClient(c.httpClient)
	c.uploads = NewUploadsClient(c.httpClient)
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL implements openai.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send implements openai.Sender.Send for descriptors without a dedicated facade method.
func (c *Client) Send(ctx context.Context, req openai.Request) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Resource client accessors

// Audio implements openai.Client.Audio.
func (c *Client) Audio() openai.AudioClient {
	return c.audio
}

// Batches implements openai.Client.Batches.
func (c *Client) Batches() openai.BatchesClient {
	return c.batches
}

// Chat implements openai.Client.Chat.
func (c *Client) Chat() openai.ChatClient {
	return c.chat
}

// Completions implements openai.Client.Completions.
func (c *Client) Completions() openai.CompletionsClient {
	return c.completions
}

// Embeddings implements openai.Client.Embeddings.
func (c *Client) Embeddings() openai.EmbeddingsClient {
	return c.embeddings
}

// Files implements openai.Client.Files.
func (c *Client) Files() openai.FilesClient {
	return c.files
}

// FineTuning implements openai.Client.FineTuning.
func (c *Client) FineTuning() openai.FineTuningClient {
	return c.fineTuning
}

// Images implements openai.Client.Images.
func (c *Client) Images() openai.ImagesClient {
	return c.images
}

// Models implements openai.Client.Models.
func (c *Client) Models() openai.ModelsClient {
	return c.models
}

// Moderations implements openai.Client.Moderations.
func (c *Client) Moderations() openai.ModerationsClient {
	return c.moderations
}

// Uploads implements openai.Client.Uploads.
func (c *Client) Uploads() openai.UploadsClient {
	return c.uploads
}

// Assistants implements openai.Client.Assistants.
func (c *Client) Assistants() (openai.Sender, error) {
	return nil, &openai.UnsupportedOperationError{Operation: "assistants"}
}

// Administration implements openai.Client.Administration.
func (c *Client) Administration() (openai.Sender, error) {
	return nil, &openai.UnsupportedOperationError{Operation: "administration"}
}

// Realtime implements openai.Client.Realtime.
func (c *Client) Realtime() (openai.Sender, error) {
	return nil, &openai.UnsupportedOperationError{Operation: "realtime"}
}
