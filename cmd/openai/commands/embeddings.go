package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewEmbeddingsCommand creates the embeddings command group.
func NewEmbeddingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "embeddings",
		Aliases: []string{"embedding"},
		Short:   "Create embeddings",
		Long:    "Create embedding vectors for text",
	}

	cmd.AddCommand(newEmbeddingsCreateCommand())

	return cmd
}

func newEmbeddingsCreateCommand() *cobra.Command {
	var (
		model  string
		inputs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create embeddings",
		Long:  "Create one embedding per --input",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateEmbeddingsRequest{
				Input:          textInput(inputs),
				Model:          model,
				EncodingFormat: optionalFlag(cmd, "encoding-format", cmd.Flags().GetString),
				Dimensions:     optionalFlag(cmd, "dimensions", cmd.Flags().GetInt),
				User:           optionalFlag(cmd, "user", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Embeddings().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "text-embedding-3-small", "embedding model")
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "text to embed (repeatable)")
	cmd.Flags().String("encoding-format", "", "float or base64")
	cmd.Flags().Int("dimensions", 0, "output dimensions, text-embedding-3 and later")
	cmd.Flags().String("user", "", "end-user identifier")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
