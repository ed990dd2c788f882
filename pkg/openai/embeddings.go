package openai

import (
	"net/http"
	"net/url"
)

// CreateEmbeddingsRequest creates an embedding vector for each input.
type CreateEmbeddingsRequest struct {
	Input TextInput
	Model string
	// EncodingFormat is "float" or "base64".
	EncodingFormat Optional[string]
	// Dimensions is only supported by text-embedding-3 and later models.
	Dimensions Optional[int]
	User       Optional[string]
}

func (r *CreateEmbeddingsRequest) Method() string    { return http.MethodPost }
func (r *CreateEmbeddingsRequest) Path() string      { return "/v1/embeddings" }
func (r *CreateEmbeddingsRequest) Query() url.Values { return nil }

func (r *CreateEmbeddingsRequest) Body() (*Body, error) {
	body := jsonBody{
		"input": r.Input.Value(),
		"model": r.Model,
	}
	setOptional(body, "encoding_format", r.EncodingFormat)
	setOptional(body, "dimensions", r.Dimensions)
	setOptional(body, "user", r.User)

	return body.body(), nil
}
