package openai

import (
	"net/http"
	"net/url"
)

// CreateBatchRequest creates and executes a batch from an uploaded file of requests.
type CreateBatchRequest struct {
	// InputFileID is a file uploaded with purpose "batch".
	InputFileID string
	// Endpoint is the endpoint used for every request in the batch, e.g. "/v1/chat/completions".
	Endpoint string
	// CompletionWindow is currently only "24h".
	CompletionWindow string
	Metadata         Optional[map[string]string]
}

func (r *CreateBatchRequest) Method() string    { return http.MethodPost }
func (r *CreateBatchRequest) Path() string      { return "/v1/batches" }
func (r *CreateBatchRequest) Query() url.Values { return nil }

func (r *CreateBatchRequest) Body() (*Body, error) {
	body := jsonBody{
		"input_file_id":     r.InputFileID,
		"endpoint":          r.Endpoint,
		"completion_window": r.CompletionWindow,
	}
	setOptional(body, "metadata", r.Metadata)

	return body.body(), nil
}

// RetrieveBatchRequest retrieves a batch.
type RetrieveBatchRequest struct {
	BatchID string
}

func (r *RetrieveBatchRequest) Method() string       { return http.MethodGet }
func (r *RetrieveBatchRequest) Path() string         { return "/v1/batches/" + r.BatchID }
func (r *RetrieveBatchRequest) Query() url.Values    { return nil }
func (r *RetrieveBatchRequest) Body() (*Body, error) { return nil, nil }

// CancelBatchRequest cancels an in-progress batch.
type CancelBatchRequest struct {
	BatchID string
}

func (r *CancelBatchRequest) Method() string       { return http.MethodPost }
func (r *CancelBatchRequest) Path() string         { return "/v1/batches/" + r.BatchID + "/cancel" }
func (r *CancelBatchRequest) Query() url.Values    { return nil }
func (r *CancelBatchRequest) Body() (*Body, error) { return nil, nil }

// ListBatchesRequest lists the organization's batches.
type ListBatchesRequest struct {
	// After is the cursor returned as last_id by the previous page.
	After Optional[string]
	// Limit ranges from 1 to 100.
	Limit Optional[int]
}

func (r *ListBatchesRequest) Method() string       { return http.MethodGet }
func (r *ListBatchesRequest) Path() string         { return "/v1/batches" }
func (r *ListBatchesRequest) Query() url.Values    { return cursorQuery(r.After, r.Limit) }
func (r *ListBatchesRequest) Body() (*Body, error) { return nil, nil }
