package openai

import (
	"net/http"
	"net/url"
)

// CreateCompletionRequest creates a completion with the legacy completions endpoint.
type CreateCompletionRequest struct {
	Model  string
	Prompt TextInput

	BestOf           Optional[int]
	Echo             Optional[bool]
	FrequencyPenalty Optional[float64]
	// LogitBias maps token IDs to a bias from -100 to 100.
	LogitBias Optional[map[string]int]
	// Logprobs is the number of most likely tokens to return, at most 5.
	Logprobs        Optional[int]
	MaxTokens       Optional[int]
	N               Optional[int]
	PresencePenalty Optional[float64]
	Seed            Optional[int]
	Stop            Optional[TextInput]
	Stream          Optional[bool]
	StreamOptions   Optional[map[string]interface{}]
	Suffix          Optional[string]
	Temperature     Optional[float64]
	TopP            Optional[float64]
	User            Optional[string]
}

func (r *CreateCompletionRequest) Method() string    { return http.MethodPost }
func (r *CreateCompletionRequest) Path() string      { return "/v1/completions" }
func (r *CreateCompletionRequest) Query() url.Values { return nil }

func (r *CreateCompletionRequest) Body() (*Body, error) {
	body := jsonBody{
		"model":  r.Model,
		"prompt": r.Prompt.Value(),
	}
	setOptional(body, "best_of", r.BestOf)
	setOptional(body, "echo", r.Echo)
	setOptional(body, "frequency_penalty", r.FrequencyPenalty)
	setOptional(body, "logit_bias", r.LogitBias)
	setOptional(body, "logprobs", r.Logprobs)
	setOptional(body, "max_tokens", r.MaxTokens)
	setOptional(body, "n", r.N)
	setOptional(body, "presence_penalty", r.PresencePenalty)
	setOptional(body, "seed", r.Seed)
	setOptionalText(body, "stop", r.Stop)
	setOptional(body, "stream", r.Stream)
	setOptional(body, "stream_options", r.StreamOptions)
	setOptional(body, "suffix", r.Suffix)
	setOptional(body, "temperature", r.Temperature)
	setOptional(body, "top_p", r.TopP)
	setOptional(body, "user", r.User)

	return body.body(), nil
}
