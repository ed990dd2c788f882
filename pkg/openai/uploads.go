package openai

import (
	"net/http"
	"net/url"
)

const uploadsPath = "/v1/uploads"

// CreateUploadRequest creates an upload that parts can be added to.
type CreateUploadRequest struct {
	Filename string
	Purpose  string
	// Bytes is the total size of the file being uploaded.
	Bytes    int64
	MimeType string
}

func (r *CreateUploadRequest) Method() string    { return http.MethodPost }
func (r *CreateUploadRequest) Path() string      { return uploadsPath }
func (r *CreateUploadRequest) Query() url.Values { return nil }

func (r *CreateUploadRequest) Body() (*Body, error) {
	return jsonBody{
		"filename":  r.Filename,
		"purpose":   r.Purpose,
		"bytes":     r.Bytes,
		"mime_type": r.MimeType,
	}.body(), nil
}

// AddUploadPartRequest adds one chunk of at most 64MB to an upload.
type AddUploadPartRequest struct {
	UploadID string
	Data     DataInput
}

func (r *AddUploadPartRequest) Method() string    { return http.MethodPost }
func (r *AddUploadPartRequest) Path() string      { return uploadsPath + "/" + r.UploadID + "/parts" }
func (r *AddUploadPartRequest) Query() url.Values { return nil }

func (r *AddUploadPartRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.data("data", r.Data)

	return form.body()
}

// CompleteUploadRequest finishes an upload. PartIDs fixes the order in which
// parts are assembled.
type CompleteUploadRequest struct {
	UploadID string
	PartIDs  []string
	// MD5 is checked against the assembled file when present.
	MD5 Optional[string]
}

func (r *CompleteUploadRequest) Method() string    { return http.MethodPost }
func (r *CompleteUploadRequest) Path() string      { return uploadsPath + "/" + r.UploadID + "/complete" }
func (r *CompleteUploadRequest) Query() url.Values { return nil }

func (r *CompleteUploadRequest) Body() (*Body, error) {
	partIDs := r.PartIDs
	if partIDs == nil {
		partIDs = []string{}
	}

	body := jsonBody{
		"part_ids": partIDs,
	}
	setOptional(body, "md5", r.MD5)

	return body.body(), nil
}

// CancelUploadRequest cancels an upload. No parts can be added afterwards.
type CancelUploadRequest struct {
	UploadID string
}

func (r *CancelUploadRequest) Method() string       { return http.MethodPost }
func (r *CancelUploadRequest) Path() string         { return uploadsPath + "/" + r.UploadID + "/cancel" }
func (r *CancelUploadRequest) Query() url.Values    { return nil }
func (r *CancelUploadRequest) Body() (*Body, error) { return nil, nil }
