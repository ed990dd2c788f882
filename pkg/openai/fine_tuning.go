package openai

import (
	"net/http"
	"net/url"
)

const fineTuningJobsPath = "/v1/fine_tuning/jobs"

// CreateFineTuningJobRequest creates a job that fine-tunes a model from a
// training file.
type CreateFineTuningJobRequest struct {
	Model        string
	TrainingFile string

	// Suffix is appended to the fine-tuned model name, up to 64 characters.
	Suffix         Optional[string]
	ValidationFile Optional[string]
	Integrations   Optional[[]map[string]interface{}]
	Seed           Optional[int]
	// TuningMethod is sent as "method": supervised, dpo or reinforcement tuning
	// with its hyperparameters.
	TuningMethod Optional[map[string]interface{}]
	Metadata     Optional[map[string]string]
}

func (r *CreateFineTuningJobRequest) Method() string    { return http.MethodPost }
func (r *CreateFineTuningJobRequest) Path() string      { return fineTuningJobsPath }
func (r *CreateFineTuningJobRequest) Query() url.Values { return nil }

func (r *CreateFineTuningJobRequest) Body() (*Body, error) {
	body := jsonBody{
		"model":         r.Model,
		"training_file": r.TrainingFile,
	}
	setOptional(body, "suffix", r.Suffix)
	setOptional(body, "validation_file", r.ValidationFile)
	setOptional(body, "integrations", r.Integrations)
	setOptional(body, "seed", r.Seed)
	setOptional(body, "method", r.TuningMethod)
	setOptional(body, "metadata", r.Metadata)

	return body.body(), nil
}

// ListFineTuningJobsRequest lists the organization's fine-tuning jobs.
type ListFineTuningJobsRequest struct {
	After Optional[string]
	Limit Optional[int]
}

func (r *ListFineTuningJobsRequest) Method() string       { return http.MethodGet }
func (r *ListFineTuningJobsRequest) Path() string         { return fineTuningJobsPath }
func (r *ListFineTuningJobsRequest) Query() url.Values    { return cursorQuery(r.After, r.Limit) }
func (r *ListFineTuningJobsRequest) Body() (*Body, error) { return nil, nil }

// RetrieveFineTuningJobRequest returns a fine-tuning job.
type RetrieveFineTuningJobRequest struct {
	JobID string
}

func (r *RetrieveFineTuningJobRequest) Method() string       { return http.MethodGet }
func (r *RetrieveFineTuningJobRequest) Path() string         { return fineTuningJobsPath + "/" + r.JobID }
func (r *RetrieveFineTuningJobRequest) Query() url.Values    { return nil }
func (r *RetrieveFineTuningJobRequest) Body() (*Body, error) { return nil, nil }

// CancelFineTuningJobRequest cancels a running fine-tuning job.
type CancelFineTuningJobRequest struct {
	JobID string
}

func (r *CancelFineTuningJobRequest) Method() string       { return http.MethodPost }
func (r *CancelFineTuningJobRequest) Path() string         { return fineTuningJobsPath + "/" + r.JobID + "/cancel" }
func (r *CancelFineTuningJobRequest) Query() url.Values    { return nil }
func (r *CancelFineTuningJobRequest) Body() (*Body, error) { return nil, nil }

// ListFineTuningEventsRequest lists status updates for a fine-tuning job.
type ListFineTuningEventsRequest struct {
	JobID string
	After Optional[string]
	Limit Optional[int]
}

func (r *ListFineTuningEventsRequest) Method() string       { return http.MethodGet }
func (r *ListFineTuningEventsRequest) Path() string         { return fineTuningJobsPath + "/" + r.JobID + "/events" }
func (r *ListFineTuningEventsRequest) Query() url.Values    { return cursorQuery(r.After, r.Limit) }
func (r *ListFineTuningEventsRequest) Body() (*Body, error) { return nil, nil }

// ListFineTuningCheckpointsRequest lists checkpoints saved by a fine-tuning job.
type ListFineTuningCheckpointsRequest struct {
	JobID string
	After Optional[string]
	Limit Optional[int]
}

func (r *ListFineTuningCheckpointsRequest) Method() string { return http.MethodGet }
func (r *ListFineTuningCheckpointsRequest) Path() string {
	return fineTuningJobsPath + "/" + r.JobID + "/checkpoints"
}
func (r *ListFineTuningCheckpointsRequest) Query() url.Values    { return cursorQuery(r.After, r.Limit) }
func (r *ListFineTuningCheckpointsRequest) Body() (*Body, error) { return nil, nil }
