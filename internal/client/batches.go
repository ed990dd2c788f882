package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// BatchesClient implements openai.BatchesClient.
type BatchesClient struct {
	httpClient *http.Client
}

// NewBatchesClient creates a new batches client.
func NewBatchesClient(httpClient *http.Client) *BatchesClient {
	return &BatchesClient{httpClient: httpClient}
}

// Create implements openai.BatchesClient.Create.
func (c *BatchesClient) Create(ctx context.Context, req *openai.CreateBatchRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Retrieve implements openai.BatchesClient.Retrieve.
func (c *BatchesClient) Retrieve(ctx context.Context, batchID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.RetrieveBatchRequest{BatchID: batchID})
}

// Cancel implements openai.BatchesClient.Cancel.
func (c *BatchesClient) Cancel(ctx context.Context, batchID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.CancelBatchRequest{BatchID: batchID})
}

// List implements openai.BatchesClient.List.
func (c *BatchesClient) List(ctx context.Context, req *openai.ListBatchesRequest) (*openai.Response, error) {
	if req == nil {
		req = &openai.ListBatchesRequest{}
	}

	return c.httpClient.Send(ctx, req)
}
