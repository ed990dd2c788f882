package openai

import (
	"net/http"
	"net/url"
)

// CreateModerationRequest classifies whether the input is potentially harmful.
type CreateModerationRequest struct {
	Input TextInput
	Model Optional[string]
}

func (r *CreateModerationRequest) Method() string    { return http.MethodPost }
func (r *CreateModerationRequest) Path() string      { return "/v1/moderations" }
func (r *CreateModerationRequest) Query() url.Values { return nil }

func (r *CreateModerationRequest) Body() (*Body, error) {
	body := jsonBody{
		"input": r.Input.Value(),
	}
	setOptional(body, "model", r.Model)

	return body.body(), nil
}
