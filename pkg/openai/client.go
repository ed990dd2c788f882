package openai

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sender executes a request descriptor. Every call is exactly one HTTP
// exchange; nothing is retried.
//
// A non-2xx response is returned together with a *RequestError. A failure
// before any response arrives is returned as a *TransportError with a nil
// response.
type Sender interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// AudioClient groups the audio endpoints.
type AudioClient interface {
	CreateSpeech(ctx context.Context, req *CreateSpeechRequest) (*Response, error)
	CreateTranscription(ctx context.Context, req *CreateTranscriptionRequest) (*Response, error)
	CreateTranslation(ctx context.Context, req *CreateTranslationRequest) (*Response, error)
}

// BatchesClient groups the batch endpoints.
type BatchesClient interface {
	Create(ctx context.Context, req *CreateBatchRequest) (*Response, error)
	Retrieve(ctx context.Context, batchID string) (*Response, error)
	Cancel(ctx context.Context, batchID string) (*Response, error)
	List(ctx context.Context, req *ListBatchesRequest) (*Response, error)
}

// ChatClient groups the chat completion endpoints.
type ChatClient interface {
	Create(ctx context.Context, req *CreateChatCompletionRequest) (*Response, error)
}

// CompletionsClient groups the legacy completion endpoints.
type CompletionsClient interface {
	Create(ctx context.Context, req *CreateCompletionRequest) (*Response, error)
}

// EmbeddingsClient groups the embedding endpoints.
type EmbeddingsClient interface {
	Create(ctx context.Context, req *CreateEmbeddingsRequest) (*Response, error)
}

// FilesClient groups the file endpoints.
type FilesClient interface {
	Upload(ctx context.Context, req *UploadFileRequest) (*Response, error)
	List(ctx context.Context, req *ListFilesRequest) (*Response, error)
	Retrieve(ctx context.Context, fileID string) (*Response, error)
	Delete(ctx context.Context, fileID string) (*Response, error)
	RetrieveContent(ctx context.Context, fileID string) (*Response, error)
}

// FineTuningClient groups the fine-tuning job endpoints.
type FineTuningClient interface {
	Create(ctx context.Context, req *CreateFineTuningJobRequest) (*Response, error)
	List(ctx context.Context, req *ListFineTuningJobsRequest) (*Response, error)
	Retrieve(ctx context.Context, jobID string) (*Response, error)
	Cancel(ctx context.Context, jobID string) (*Response, error)
	ListEvents(ctx context.Context, req *ListFineTuningEventsRequest) (*Response, error)
	ListCheckpoints(ctx context.Context, req *ListFineTuningCheckpointsRequest) (*Response, error)
}

// ImagesClient groups the image endpoints.
type ImagesClient interface {
	Create(ctx context.Context, req *CreateImageRequest) (*Response, error)
	Edit(ctx context.Context, req *CreateImageEditRequest) (*Response, error)
	CreateVariation(ctx context.Context, req *CreateImageVariationRequest) (*Response, error)
}

// ModelsClient groups the model endpoints.
type ModelsClient interface {
	List(ctx context.Context) (*Response, error)
	Retrieve(ctx context.Context, model string) (*Response, error)
	Delete(ctx context.Context, model string) (*Response, error)
}

// ModerationsClient groups the moderation endpoints.
type ModerationsClient interface {
	Create(ctx context.Context, req *CreateModerationRequest) (*Response, error)
}

// UploadsClient groups the multi-part upload endpoints.
type UploadsClient interface {
	Create(ctx context.Context, req *CreateUploadRequest) (*Response, error)
	AddPart(ctx context.Context, req *AddUploadPartRequest) (*Response, error)
	Complete(ctx context.Context, req *CompleteUploadRequest) (*Response, error)
	Cancel(ctx context.Context, uploadID string) (*Response, error)
}

// Client is the root of the API tree.
type Client interface {
	Sender

	Audio() AudioClient
	Batches() BatchesClient
	Chat() ChatClient
	Completions() CompletionsClient
	Embeddings() EmbeddingsClient
	Files() FilesClient
	FineTuning() FineTuningClient
	Images() ImagesClient
	Models() ModelsClient
	Moderations() ModerationsClient
	Uploads() UploadsClient

	// Assistants, Administration and Realtime are not implemented. They always
	// return a nil Sender and an *UnsupportedOperationError.
	Assistants() (Sender, error)
	Administration() (Sender, error)
	Realtime() (Sender, error)

	// BaseURL returns the normalized base URL requests are sent to.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an openai.Client.
//
// A Config is read once by openaiclient.New. Changing it afterwards has no
// effect on clients already built from it.
type Config struct {
	// BaseURL: API root, "https://api.openai.com" when empty. openaiclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string
	// APIKey: sent as a Bearer token. When empty no Authorization header is sent.
	APIKey string
	// APIKeyFunc: when set, called for the Bearer token of each request instead
	// of using APIKey. An empty result is an error.
	APIKeyFunc func(ctx context.Context) (string, error)
	// Organization: sent as OpenAI-Organization when set.
	Organization string
	// Project: sent as OpenAI-Project when set.
	Project string

	// Timeout: per-request timeout, 300s when zero. Ignored when HTTPClient is set.
	Timeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// MetricsRegisterer: when set, request counters and latency histograms are
	// registered on it.
	MetricsRegisterer prometheus.Registerer
	// HTTPClient: optional underlying client, e.g. with a custom transport.
	HTTPClient *http.Client
}
