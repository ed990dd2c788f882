package openai

import (
	"net/http"
	"net/url"
)

// CreateSpeechRequest generates audio from the input text.
type CreateSpeechRequest struct {
	// Model is one of the TTS models, e.g. "tts-1" or "tts-1-hd".
	Model string
	// Input is the text to synthesize, at most 4096 characters.
	Input string
	// Voice is one of alloy, ash, coral, echo, fable, onyx, nova, sage or shimmer.
	Voice string
	// ResponseFormat is mp3, opus, aac, flac, wav or pcm.
	ResponseFormat Optional[string]
	// Speed ranges from 0.25 to 4.0.
	Speed Optional[float64]
}

func (r *CreateSpeechRequest) Method() string    { return http.MethodPost }
func (r *CreateSpeechRequest) Path() string      { return "/v1/audio/speech" }
func (r *CreateSpeechRequest) Query() url.Values { return nil }

func (r *CreateSpeechRequest) Body() (*Body, error) {
	body := jsonBody{
		"model": r.Model,
		"input": r.Input,
		"voice": r.Voice,
	}
	setOptional(body, "response_format", r.ResponseFormat)
	setOptional(body, "speed", r.Speed)

	return body.body(), nil
}

// CreateTranscriptionRequest transcribes audio into the input language.
type CreateTranscriptionRequest struct {
	// File is the audio to transcribe: flac, mp3, mp4, mpeg, mpga, m4a, ogg, wav or webm.
	File  FileInput
	Model string
	// Language is the ISO-639-1 code of the input audio.
	Language       Optional[string]
	Prompt         Optional[string]
	ResponseFormat Optional[string]
	Temperature    Optional[float64]
	// TimestampGranularities accepts "word" and "segment"; it requires the
	// verbose_json response format.
	TimestampGranularities Optional[[]string]
}

func (r *CreateTranscriptionRequest) Method() string    { return http.MethodPost }
func (r *CreateTranscriptionRequest) Path() string      { return "/v1/audio/transcriptions" }
func (r *CreateTranscriptionRequest) Query() url.Values { return nil }

func (r *CreateTranscriptionRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.file("file", r.File)
	form.text("model", r.Model)
	form.optionalText("language", r.Language)
	form.optionalText("prompt", r.Prompt)
	form.optionalText("response_format", r.ResponseFormat)
	form.optionalFloat("temperature", r.Temperature)
	form.optionalList("timestamp_granularities", r.TimestampGranularities)

	return form.body()
}

// CreateTranslationRequest translates audio into English.
type CreateTranslationRequest struct {
	File  FileInput
	Model string
	// Prompt should be in English.
	Prompt         Optional[string]
	ResponseFormat Optional[string]
	Temperature    Optional[float64]
}

func (r *CreateTranslationRequest) Method() string    { return http.MethodPost }
func (r *CreateTranslationRequest) Path() string      { return "/v1/audio/translations" }
func (r *CreateTranslationRequest) Query() url.Values { return nil }

func (r *CreateTranslationRequest) Body() (*Body, error) {
	form := &formBuilder{}
	form.file("file", r.File)
	form.text("model", r.Model)
	form.optionalText("prompt", r.Prompt)
	form.optionalText("response_format", r.ResponseFormat)
	form.optionalFloat("temperature", r.Temperature)

	return form.body()
}
