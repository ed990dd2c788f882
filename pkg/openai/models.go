package openai

import (
	"net/http"
	"net/url"
)

// ListModelsRequest lists the currently available models.
type ListModelsRequest struct{}

func (r *ListModelsRequest) Method() string       { return http.MethodGet }
func (r *ListModelsRequest) Path() string         { return "/v1/models" }
func (r *ListModelsRequest) Query() url.Values    { return nil }
func (r *ListModelsRequest) Body() (*Body, error) { return nil, nil }

// RetrieveModelRequest retrieves a model instance.
type RetrieveModelRequest struct {
	Model string
}

func (r *RetrieveModelRequest) Method() string       { return http.MethodGet }
func (r *RetrieveModelRequest) Path() string         { return "/v1/models/" + r.Model }
func (r *RetrieveModelRequest) Query() url.Values    { return nil }
func (r *RetrieveModelRequest) Body() (*Body, error) { return nil, nil }

// DeleteModelRequest deletes a fine-tuned model owned by the organization.
type DeleteModelRequest struct {
	Model string
}

func (r *DeleteModelRequest) Method() string       { return http.MethodDelete }
func (r *DeleteModelRequest) Path() string         { return "/v1/models/" + r.Model }
func (r *DeleteModelRequest) Query() url.Values    { return nil }
func (r *DeleteModelRequest) Body() (*Body, error) { return nil, nil }
