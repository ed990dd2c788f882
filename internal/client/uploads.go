package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// UploadsClient implements openai.UploadsClient.
type UploadsClient struct {
	httpClient *http.Client
}

// NewUploadsClient creates a new uploads client.
func NewUploadsClient(httpClient *http.Client) *UploadsClient {
	return &UploadsClient{httpClient: httpClient}
}

// Create implements openai.UploadsClient.Create.
func (c *UploadsClient) Create(ctx context.Context, req *openai.CreateUploadRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// AddPart implements openai.UploadsClient.AddPart.
func (c *UploadsClient) AddPart(ctx context.Context, req *openai.AddUploadPartRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Complete implements openai.UploadsClient.Complete.
func (c *UploadsClient) Complete(ctx context.Context, req *openai.CompleteUploadRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Cancel implements openai.UploadsClient.Cancel.
func (c *UploadsClient) Cancel(ctx context.Context, uploadID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.CancelUploadRequest{UploadID: uploadID})
}
