package openai

import (
	"net/http"
	"net/url"
)

// UploadFileRequest uploads a file for use across endpoints.
type UploadFileRequest struct {
	File FileInput
	// Purpose is assistants, batch, fine-tune, vision, user_data or evals.
	Purpose string
}

func (r *UploadFileRequest) Method() string    { return http.MethodPost }
func (r *UploadFileRequest) Path() string      { return "/v1/files" }
func (r *UploadFileRequest) Query() url.Values { return nil }

func (r *UploadFileRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.file("file", r.File)
	form.text("purpose", r.Purpose)

	return form.body()
}

// ListFilesRequest lists the files that belong to the organization.
type ListFilesRequest struct {
	Purpose Optional[string]
	Limit   Optional[int]
	// Order is "asc" or "desc" by created_at.
	Order Optional[string]
	After Optional[string]
}

func (r *ListFilesRequest) Method() string { return http.MethodGet }
func (r *ListFilesRequest) Path() string   { return "/v1/files" }

func (r *ListFilesRequest) Query() url.Values {
	q := url.Values{}
	queryString(q, "purpose", r.Purpose)
	queryInt(q, "limit", r.Limit)
	queryString(q, "order", r.Order)
	queryString(q, "after", r.After)

	return q
}

func (r *ListFilesRequest) Body() (*Body, error) { return nil, nil }

// RetrieveFileRequest returns information about a file.
type RetrieveFileRequest struct {
	FileID string
}

func (r *RetrieveFileRequest) Method() string       { return http.MethodGet }
func (r *RetrieveFileRequest) Path() string         { return "/v1/files/" + r.FileID }
func (r *RetrieveFileRequest) Query() url.Values    { return nil }
func (r *RetrieveFileRequest) Body() (*Body, error) { return nil, nil }

// DeleteFileRequest deletes a file.
type DeleteFileRequest struct {
	FileID string
}

func (r *DeleteFileRequest) Method() string       { return http.MethodDelete }
func (r *DeleteFileRequest) Path() string         { return "/v1/files/" + r.FileID }
func (r *DeleteFileRequest) Query() url.Values    { return nil }
func (r *DeleteFileRequest) Body() (*Body, error) { return nil, nil }

// RetrieveFileContentRequest returns the raw contents of a file.
type RetrieveFileContentRequest struct {
	FileID string
}

func (r *RetrieveFileContentRequest) Method() string       { return http.MethodGet }
func (r *RetrieveFileContentRequest) Path() string         { return "/v1/files/" + r.FileID + "/content" }
func (r *RetrieveFileContentRequest) Query() url.Values    { return nil }
func (r *RetrieveFileContentRequest) Body() (*Body, error) { return nil, nil }
