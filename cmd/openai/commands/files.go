package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewFilesCommand creates the files command group.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "Manage files",
		Long:    "Upload, list, inspect, download and delete files",
	}

	cmd.AddCommand(newFilesUploadCommand())
	cmd.AddCommand(newFilesListCommand())
	cmd.AddCommand(newFilesGetCommand())
	cmd.AddCommand(newFilesDeleteCommand())
	cmd.AddCommand(newFilesContentCommand())

	return cmd
}

func newFilesUploadCommand() *cobra.Command {
	var purpose string

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file",
		Long:  "Upload a local file for use across endpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.UploadFileRequest{
				File:    openai.FileFromPath(args[0]),
				Purpose: purpose,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Files().Upload(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&purpose, "purpose", "", "assistants, batch, fine-tune, vision, user_data or evals")
	_ = cmd.MarkFlagRequired("purpose")

	return cmd
}

func newFilesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files",
		Long:  "List the files that belong to the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.ListFilesRequest{
				Purpose: optionalFlag(cmd, "purpose", cmd.Flags().GetString),
				Limit:   optionalFlag(cmd, "limit", cmd.Flags().GetInt),
				Order:   optionalFlag(cmd, "order", cmd.Flags().GetString),
				After:   optionalFlag(cmd, "after", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Files().List(ctx, req)
			})
		},
	}

	addCursorFlags(cmd)
	cmd.Flags().String("purpose", "", "only files with this purpose")
	cmd.Flags().String("order", "desc", "asc or desc by created_at")

	return cmd
}

func newFilesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE_ID",
		Short: "Get a file",
		Long:  "Display information about a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Files().Retrieve(ctx, args[0])
			})
		},
	}
}

func newFilesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE_ID",
		Short: "Delete a file",
		Long:  "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Files().Delete(ctx, args[0])
			})
		},
	}
}

func newFilesContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content FILE_ID",
		Short: "Download file content",
		Long:  "Print the contents of a file. Combine with --output raw for binary files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Files().RetrieveContent(ctx, args[0])
			})
		},
	}
}
