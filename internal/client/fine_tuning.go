package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// FineTuningClient implements openai.FineTuningClient.
type FineTuningClient struct {
	httpClient *http.Client
}

// NewFineTuningClient creates a new fine-tuning client.
func NewFineTuningClient(httpClient *http.Client) *FineTuningClient {
	return &FineTuningClient{httpClient: httpClient}
}

// Create implements openai.FineTuningClient.Create.
func (c *FineTuningClient) Create(ctx context.Context, req *openai.CreateFineTuningJobRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// List implements openai.FineTuningClient.List.
func (c *FineTuningClient) List(ctx context.Context, req *openai.ListFineTuningJobsRequest) (*openai.Response, error) {
	if req == nil {
		req = &openai.ListFineTuningJobsRequest{}
	}

	return c.httpClient.Send(ctx, req)
}

// Retrieve implements openai.FineTuningClient.Retrieve.
func (c *FineTuningClient) Retrieve(ctx context.Context, jobID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.RetrieveFineTuningJobRequest{JobID: jobID})
}

// Cancel implements openai.FineTuningClient.Cancel.
func (c *FineTuningClient) Cancel(ctx context.Context, jobID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.CancelFineTuningJobRequest{JobID: jobID})
}

// ListEvents implements openai.FineTuningClient.ListEvents.
func (c *FineTuningClient) ListEvents(ctx context.Context, req *openai.ListFineTuningEventsRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// ListCheckpoints implements openai.FineTuningClient.ListCheckpoints.
func (c *FineTuningClient) ListCheckpoints(ctx context.Context, req *openai.ListFineTuningCheckpointsRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}
