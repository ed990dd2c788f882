package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewCompletionsCommand creates the completions command group.
func NewCompletionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completions",
		Short: "Legacy completions",
		Long:  "Create completions with the legacy completions endpoint",
	}

	cmd.AddCommand(newCompletionsCreateCommand())

	return cmd
}

func newCompletionsCreateCommand() *cobra.Command {
	var (
		model   string
		prompts []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a completion",
		Long:  "Create a completion for one prompt, or for several when --prompt is repeated",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateCompletionRequest{
				Model:            model,
				Prompt:           textInput(prompts),
				BestOf:           optionalFlag(cmd, "best-of", cmd.Flags().GetInt),
				Echo:             optionalFlag(cmd, "echo", cmd.Flags().GetBool),
				FrequencyPenalty: optionalFlag(cmd, "frequency-penalty", cmd.Flags().GetFloat64),
				Logprobs:         optionalFlag(cmd, "logprobs", cmd.Flags().GetInt),
				MaxTokens:        optionalFlag(cmd, "max-tokens", cmd.Flags().GetInt),
				N:                optionalFlag(cmd, "n", cmd.Flags().GetInt),
				PresencePenalty:  optionalFlag(cmd, "presence-penalty", cmd.Flags().GetFloat64),
				Seed:             optionalFlag(cmd, "seed", cmd.Flags().GetInt),
				Stop:             optionalText(cmd, "stop"),
				Stream:           optionalFlag(cmd, "stream", cmd.Flags().GetBool),
				Suffix:           optionalFlag(cmd, "suffix", cmd.Flags().GetString),
				Temperature:      optionalFlag(cmd, "temperature", cmd.Flags().GetFloat64),
				TopP:             optionalFlag(cmd, "top-p", cmd.Flags().GetFloat64),
				User:             optionalFlag(cmd, "user", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Completions().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "gpt-3.5-turbo-instruct", "completion model")
	cmd.Flags().StringArrayVar(&prompts, "prompt", nil, "prompt (repeatable)")
	cmd.Flags().Int("best-of", 1, "completions generated server-side")
	cmd.Flags().Bool("echo", false, "echo back the prompt")
	cmd.Flags().Float64("frequency-penalty", 0, "frequency penalty from -2.0 to 2.0")
	cmd.Flags().Int("logprobs", 0, "number of most likely tokens to return, at most 5")
	cmd.Flags().Int("max-tokens", 16, "maximum tokens to generate")
	cmd.Flags().Int("n", 1, "completions per prompt")
	cmd.Flags().Float64("presence-penalty", 0, "presence penalty from -2.0 to 2.0")
	cmd.Flags().Int("seed", 0, "seed for deterministic sampling")
	cmd.Flags().StringArray("stop", nil, "stop sequence (repeatable)")
	cmd.Flags().Bool("stream", false, "request server-sent events; printed unparsed")
	cmd.Flags().String("suffix", "", "text after the inserted completion")
	cmd.Flags().Float64("temperature", 1, "sampling temperature")
	cmd.Flags().Float64("top-p", 1, "nucleus sampling mass")
	cmd.Flags().String("user", "", "end-user identifier")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
