package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewAudioCommand creates the audio command group.
func NewAudioCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Speech, transcription and translation",
		Long:  "Generate speech from text and turn audio into text",
	}

	cmd.AddCommand(newAudioSpeechCommand())
	cmd.AddCommand(newAudioTranscribeCommand())
	cmd.AddCommand(newAudioTranslateCommand())

	return cmd
}

func newAudioSpeechCommand() *cobra.Command {
	var model, input, voice string

	cmd := &cobra.Command{
		Use:   "speech",
		Short: "Generate speech",
		Long:  "Generate audio from text. Use --output raw to write the audio bytes to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateSpeechRequest{
				Model:          model,
				Input:          input,
				Voice:          voice,
				ResponseFormat: optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				Speed:          optionalFlag(cmd, "speed", cmd.Flags().GetFloat64),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Audio().CreateSpeech(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "tts-1", "speech model")
	cmd.Flags().StringVar(&input, "input", "", "text to synthesize")
	cmd.Flags().StringVar(&voice, "voice", "alloy", "voice to use")
	cmd.Flags().String("response-format", "", "mp3, opus, aac, flac, wav or pcm")
	cmd.Flags().Float64("speed", 1.0, "speed from 0.25 to 4.0")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newAudioTranscribeCommand() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "transcribe FILE",
		Short: "Transcribe audio",
		Long:  "Transcribe an audio file into the input language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateTranscriptionRequest{
				File:                   openai.FileFromPath(args[0]),
				Model:                  model,
				Language:               optionalFlag(cmd, "language", cmd.Flags().GetString),
				Prompt:                 optionalFlag(cmd, "prompt", cmd.Flags().GetString),
				ResponseFormat:         optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				Temperature:            optionalFlag(cmd, "temperature", cmd.Flags().GetFloat64),
				TimestampGranularities: optionalFlag(cmd, "timestamp-granularities", cmd.Flags().GetStringSlice),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Audio().CreateTranscription(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "whisper-1", "transcription model")
	cmd.Flags().String("language", "", "ISO-639-1 language of the audio")
	cmd.Flags().String("prompt", "", "text to guide the model's style")
	cmd.Flags().String("response-format", "", "json, text, srt, verbose_json or vtt")
	cmd.Flags().Float64("temperature", 0, "sampling temperature")
	cmd.Flags().StringSlice("timestamp-granularities", nil, "word and/or segment")

	return cmd
}

func newAudioTranslateCommand() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "translate FILE",
		Short: "Translate audio",
		Long:  "Translate an audio file into English text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateTranslationRequest{
				File:           openai.FileFromPath(args[0]),
				Model:          model,
				Prompt:         optionalFlag(cmd, "prompt", cmd.Flags().GetString),
				ResponseFormat: optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				Temperature:    optionalFlag(cmd, "temperature", cmd.Flags().GetFloat64),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Audio().CreateTranslation(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "whisper-1", "translation model")
	cmd.Flags().String("prompt", "", "English text to guide the model's style")
	cmd.Flags().String("response-format", "", "json, text, srt, verbose_json or vtt")
	cmd.Flags().Float64("temperature", 0, "sampling temperature")

	return cmd
}
