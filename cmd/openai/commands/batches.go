package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewBatchesCommand creates the batches command group.
func NewBatchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "batches",
		Aliases: []string{"batch"},
		Short:   "Manage batches",
		Long:    "Create, inspect and cancel asynchronous request batches",
	}

	cmd.AddCommand(newBatchesCreateCommand())
	cmd.AddCommand(newBatchesGetCommand())
	cmd.AddCommand(newBatchesCancelCommand())
	cmd.AddCommand(newBatchesListCommand())

	return cmd
}

func newBatchesCreateCommand() *cobra.Command {
	var inputFileID, endpoint, window string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a batch",
		Long:  "Create and execute a batch from an uploaded JSONL file of requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := parseMetadata(cmd)
			if err != nil {
				return err
			}

			req := &openai.CreateBatchRequest{
				InputFileID:      inputFileID,
				Endpoint:         endpoint,
				CompletionWindow: window,
				Metadata:         metadata,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Batches().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&inputFileID, "input-file-id", "", "file uploaded with purpose batch")
	cmd.Flags().StringVar(&endpoint, "endpoint", "/v1/chat/completions", "endpoint used for every request")
	cmd.Flags().StringVar(&window, "completion-window", "24h", "time frame to process the batch")
	cmd.Flags().StringArray("metadata", nil, "metadata as KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("input-file-id")

	return cmd
}

func newBatchesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BATCH_ID",
		Short: "Get a batch",
		Long:  "Display details of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Batches().Retrieve(ctx, args[0])
			})
		},
	}
}

func newBatchesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel BATCH_ID",
		Short: "Cancel a batch",
		Long:  "Cancel an in-progress batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Batches().Cancel(ctx, args[0])
			})
		},
	}
}

func newBatchesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batches",
		Long:  "List the organization's batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.ListBatchesRequest{
				After: optionalFlag(cmd, "after", cmd.Flags().GetString),
				Limit: optionalFlag(cmd, "limit", cmd.Flags().GetInt),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Batches().List(ctx, req)
			})
		},
	}

	addCursorFlags(cmd)

	return cmd
}
