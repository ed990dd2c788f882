package openai

import (
	"net/http"
	"net/url"
)

// ChatMessage is one message of a chat conversation. Content is a string or a
// list of content part objects.
type ChatMessage struct {
	Role       string      `json:"role"                   yaml:"role"`
	Content    interface{} `json:"content"                yaml:"content"`
	Name       string      `json:"name,omitempty"         yaml:"name,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty" yaml:"tool_call_id,omitempty"`
}

// CreateChatCompletionRequest creates a model response for a chat conversation.
type CreateChatCompletionRequest struct {
	Model    string
	Messages []ChatMessage

	FrequencyPenalty    Optional[float64]
	LogitBias           Optional[map[string]int]
	Logprobs            Optional[bool]
	TopLogprobs         Optional[int]
	MaxCompletionTokens Optional[int]
	N                   Optional[int]
	PresencePenalty     Optional[float64]
	// ResponseFormat is an object such as {"type": "json_object"}.
	ResponseFormat  Optional[map[string]interface{}]
	ReasoningEffort Optional[string]
	Seed            Optional[int]
	Stop            Optional[TextInput]
	Store           Optional[bool]
	// Stream asks the server for server-sent events. The response body is
	// returned unparsed either way.
	Stream        Optional[bool]
	StreamOptions Optional[map[string]interface{}]
	Temperature   Optional[float64]
	TopP          Optional[float64]
	Tools         Optional[[]map[string]interface{}]
	// ToolChoice is "none", "auto", "required" or a tool object.
	ToolChoice        Optional[interface{}]
	ParallelToolCalls Optional[bool]
	User              Optional[string]
	Metadata          Optional[map[string]string]
}

func (r *CreateChatCompletionRequest) Method() string    { return http.MethodPost }
func (r *CreateChatCompletionRequest) Path() string      { return "/v1/chat/completions" }
func (r *CreateChatCompletionRequest) Query() url.Values { return nil }

func (r *CreateChatCompletionRequest) Body() (*Body, error) {
	messages := r.Messages
	if messages == nil {
		messages = []ChatMessage{}
	}

	body := jsonBody{
		"model":    r.Model,
		"messages": messages,
	}
	setOptional(body, "frequency_penalty", r.FrequencyPenalty)
	setOptional(body, "logit_bias", r.LogitBias)
	setOptional(body, "logprobs", r.Logprobs)
	setOptional(body, "top_logprobs", r.TopLogprobs)
	setOptional(body, "max_completion_tokens", r.MaxCompletionTokens)
	setOptional(body, "n", r.N)
	setOptional(body, "presence_penalty", r.PresencePenalty)
	setOptional(body, "response_format", r.ResponseFormat)
	setOptional(body, "reasoning_effort", r.ReasoningEffort)
	setOptional(body, "seed", r.Seed)
	setOptionalText(body, "stop", r.Stop)
	setOptional(body, "store", r.Store)
	setOptional(body, "stream", r.Stream)
	setOptional(body, "stream_options", r.StreamOptions)
	setOptional(body, "temperature", r.Temperature)
	setOptional(body, "top_p", r.TopP)
	setOptional(body, "tools", r.Tools)
	setOptional(body, "tool_choice", r.ToolChoice)
	setOptional(body, "parallel_tool_calls", r.ParallelToolCalls)
	setOptional(body, "user", r.User)
	setOptional(body, "metadata", r.Metadata)

	return body.body(), nil
}
