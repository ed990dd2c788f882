package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewChatCommand creates the chat command group.
func NewChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat completions",
		Long:  "Create model responses for chat conversations",
	}

	cmd.AddCommand(newChatCreateCommand())

	return cmd
}

func newChatCreateCommand() *cobra.Command {
	var (
		model    string
		messages []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a chat completion",
		Long: `Create a chat completion. Messages are given in order as ROLE=CONTENT:

  openai chat create --message system="Be terse" --message user="Hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseMessages(messages)
			if err != nil {
				return err
			}

			metadata, err := parseMetadata(cmd)
			if err != nil {
				return err
			}

			req := &openai.CreateChatCompletionRequest{
				Model:               model,
				Messages:            parsed,
				FrequencyPenalty:    optionalFlag(cmd, "frequency-penalty", cmd.Flags().GetFloat64),
				MaxCompletionTokens: optionalFlag(cmd, "max-completion-tokens", cmd.Flags().GetInt),
				N:                   optionalFlag(cmd, "n", cmd.Flags().GetInt),
				PresencePenalty:     optionalFlag(cmd, "presence-penalty", cmd.Flags().GetFloat64),
				ReasoningEffort:     optionalFlag(cmd, "reasoning-effort", cmd.Flags().GetString),
				Seed:                optionalFlag(cmd, "seed", cmd.Flags().GetInt),
				Stop:                optionalText(cmd, "stop"),
				Store:               optionalFlag(cmd, "store", cmd.Flags().GetBool),
				Stream:              optionalFlag(cmd, "stream", cmd.Flags().GetBool),
				Temperature:         optionalFlag(cmd, "temperature", cmd.Flags().GetFloat64),
				TopP:                optionalFlag(cmd, "top-p", cmd.Flags().GetFloat64),
				User:                optionalFlag(cmd, "user", cmd.Flags().GetString),
				Metadata:            metadata,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Chat().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "gpt-4o-mini", "chat model")
	cmd.Flags().StringArrayVar(&messages, "message", nil, "message as ROLE=CONTENT (repeatable)")
	cmd.Flags().Float64("frequency-penalty", 0, "frequency penalty from -2.0 to 2.0")
	cmd.Flags().Int("max-completion-tokens", 0, "upper bound on generated tokens")
	cmd.Flags().Int("n", 1, "number of choices")
	cmd.Flags().Float64("presence-penalty", 0, "presence penalty from -2.0 to 2.0")
	cmd.Flags().String("reasoning-effort", "", "low, medium or high for reasoning models")
	cmd.Flags().Int("seed", 0, "seed for deterministic sampling")
	cmd.Flags().StringArray("stop", nil, "stop sequence (repeatable)")
	cmd.Flags().Bool("store", false, "store the completion")
	cmd.Flags().Bool("stream", false, "request server-sent events; printed unparsed")
	cmd.Flags().Float64("temperature", 1, "sampling temperature")
	cmd.Flags().Float64("top-p", 1, "nucleus sampling mass")
	cmd.Flags().String("user", "", "end-user identifier")
	cmd.Flags().StringArray("metadata", nil, "metadata as KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
