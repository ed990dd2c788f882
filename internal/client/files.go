package client

import (
	"context"

	"github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
)

// FilesClient implements openai.FilesClient.
type FilesClient struct {
	httpClient *http.Client
}

// NewFilesClient creates a new files client.
func NewFilesClient(httpClient *http.Client) *FilesClient {
	return &FilesClient{httpClient: httpClient}
}

// Upload implements openai.FilesClient.Upload.
func (c *FilesClient) Upload(ctx context.Context, req *openai.UploadFileRequest) (*openai.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// List implements openai.FilesClient.List.
func (c *FilesClient) List(ctx context.Context, req *openai.ListFilesRequest) (*openai.Response, error) {
	if req == nil {
		req = &openai.ListFilesRequest{}
	}

	return c.httpClient.Send(ctx, req)
}

// Retrieve implements openai.FilesClient.Retrieve.
func (c *FilesClient) Retrieve(ctx context.Context, fileID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.RetrieveFileRequest{FileID: fileID})
}

// Delete implements openai.FilesClient.Delete.
func (c *FilesClient) Delete(ctx context.Context, fileID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.DeleteFileRequest{FileID: fileID})
}

// RetrieveContent implements openai.FilesClient.RetrieveContent.
func (c *FilesClient) RetrieveContent(ctx context.Context, fileID string) (*openai.Response, error) {
	return c.httpClient.Send(ctx, &openai.RetrieveFileContentRequest{FileID: fileID})
}
