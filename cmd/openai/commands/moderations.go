package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewModerationsCommand creates the moderations command group.
func NewModerationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "moderations",
		Aliases: []string{"moderation"},
		Short:   "Classify content",
		Long:    "Check whether text is potentially harmful",
	}

	var inputs []string

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a moderation",
		Long:  "Classify one --input, or several when it is repeated",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateModerationRequest{
				Input: textInput(inputs),
				Model: optionalFlag(cmd, "model", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Moderations().Create(ctx, req)
			})
		},
	}

	create.Flags().StringArrayVar(&inputs, "input", nil, "text to classify (repeatable)")
	create.Flags().String("model", "", "moderation model")
	_ = create.MarkFlagRequired("input")

	cmd.AddCommand(create)

	return cmd
}
