package openai

import (
	"net/http"
	"net/url"
)

// CreateImageRequest generates images from a prompt.
type CreateImageRequest struct {
	Prompt string

	Model Optional[string]
	N     Optional[int]
	// Quality is "standard" or "hd" for dall-e-3.
	Quality Optional[string]
	// ResponseFormat is "url" or "b64_json".
	ResponseFormat Optional[string]
	Size           Optional[string]
	// Style is "vivid" or "natural" for dall-e-3.
	Style Optional[string]
	User  Optional[string]
}

func (r *CreateImageRequest) Method() string    { return http.MethodPost }
func (r *CreateImageRequest) Path() string      { return "/v1/images/generations" }
func (r *CreateImageRequest) Query() url.Values { return nil }

func (r *CreateImageRequest) Body() (*Body, error) {
	body := jsonBody{
		"prompt": r.Prompt,
	}
	setOptional(body, "model", r.Model)
	setOptional(body, "n", r.N)
	setOptional(body, "quality", r.Quality)
	setOptional(body, "response_format", r.ResponseFormat)
	setOptional(body, "size", r.Size)
	setOptional(body, "style", r.Style)
	setOptional(body, "user", r.User)

	return body.body(), nil
}

// CreateImageEditRequest edits or extends an image given a prompt.
type CreateImageEditRequest struct {
	// Image is a square PNG under 4MB.
	Image  FileInput
	Prompt string
	// Mask marks the editable area with fully transparent pixels.
	Mask           Optional[FileInput]
	Model          Optional[string]
	N              Optional[int]
	Size           Optional[string]
	ResponseFormat Optional[string]
	User           Optional[string]
}

func (r *CreateImageEditRequest) Method() string    { return http.MethodPost }
func (r *CreateImageEditRequest) Path() string      { return "/v1/images/edits" }
func (r *CreateImageEditRequest) Query() url.Values { return nil }

func (r *CreateImageEditRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.file("image", r.Image)
	form.text("prompt", r.Prompt)
	form.optionalFile("mask", r.Mask)
	form.optionalText("model", r.Model)
	form.optionalInt("n", r.N)
	form.optionalText("size", r.Size)
	form.optionalText("response_format", r.ResponseFormat)
	form.optionalText("user", r.User)

	return form.body()
}

// CreateImageVariationRequest creates variations of an image.
type CreateImageVariationRequest struct {
	Image FileInput

	Model          Optional[string]
	N              Optional[int]
	ResponseFormat Optional[string]
	Size           Optional[string]
	User           Optional[string]
}

func (r *CreateImageVariationRequest) Method() string    { return http.MethodPost }
func (r *CreateImageVariationRequest) Path() string      { return "/v1/images/variations" }
func (r *CreateImageVariationRequest) Query() url.Values { return nil }

func (r *CreateImageVariationRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.file("image", r.Image)
	form.optionalText("model", r.Model)
	form.optionalInt("n", r.N)
	form.optionalText("response_format", r.ResponseFormat)
	form.optionalText("size", r.Size)
	form.optionalText("user", r.User)

	return form.body()
}
