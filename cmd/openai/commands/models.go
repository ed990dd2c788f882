package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewModelsCommand creates the models command group.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models",
		Aliases: []string{"model"},
		Short:   "Manage models",
		Long:    "List and inspect available models and delete fine-tuned ones",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List models",
		Long:  "List the currently available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Models().List(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get MODEL",
		Short: "Get a model",
		Long:  "Display information about a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Models().Retrieve(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete MODEL",
		Short: "Delete a model",
		Long:  "Delete a fine-tuned model owned by the organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Models().Delete(ctx, args[0])
			})
		},
	})

	return cmd
}
