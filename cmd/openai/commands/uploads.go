package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewUploadsCommand creates the uploads command group.
func NewUploadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uploads",
		Aliases: []string{"upload"},
		Short:   "Manage multi-part uploads",
		Long:    "Upload large files in parts and assemble them into a file",
	}

	cmd.AddCommand(newUploadsCreateCommand())
	cmd.AddCommand(newUploadsAddPartCommand())
	cmd.AddCommand(newUploadsCompleteCommand())
	cmd.AddCommand(newUploadsCancelCommand())

	return cmd
}

func newUploadsCreateCommand() *cobra.Command {
	var (
		filename, purpose, mimeType string
		size                        int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an upload",
		Long:  "Create an upload that parts can be added to",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateUploadRequest{
				Filename: filename,
				Purpose:  purpose,
				Bytes:    size,
				MimeType: mimeType,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Uploads().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "name of the assembled file")
	cmd.Flags().StringVar(&purpose, "purpose", "", "purpose of the assembled file")
	cmd.Flags().Int64Var(&size, "bytes", 0, "total size in bytes")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the assembled file")
	_ = cmd.MarkFlagRequired("filename")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("bytes")
	_ = cmd.MarkFlagRequired("mime-type")

	return cmd
}

func newUploadsAddPartCommand() *cobra.Command {
	var (
		path      string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "add-part UPLOAD_ID",
		Short: "Add a part",
		Long:  "Add a chunk of at most 64MB read from --file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (path == "") == !fromStdin {
				return constants.ErrInvalidDataSource
			}

			data := openai.DataFromReader(cmd.InOrStdin())

			if path != "" {
				// path is supplied by the user running the command
				// #nosec G304
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open part: %w", err)
				}
				defer func() { _ = file.Close() }()

				data = openai.DataFromPart(openai.StreamPart(filepath.Base(path), file))
			}

			req := &openai.AddUploadPartRequest{
				UploadID: args[0],
				Data:     data,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Uploads().AddPart(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "file holding the part")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the part from stdin")

	return cmd
}

func newUploadsCompleteCommand() *cobra.Command {
	var partIDs []string

	cmd := &cobra.Command{
		Use:   "complete UPLOAD_ID",
		Short: "Complete an upload",
		Long:  "Assemble the parts, in the order given by --part-id, into a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CompleteUploadRequest{
				UploadID: args[0],
				PartIDs:  partIDs,
				MD5:      optionalFlag(cmd, "md5", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Uploads().Complete(ctx, req)
			})
		},
	}

	cmd.Flags().StringSliceVar(&partIDs, "part-id", nil, "part IDs in assembly order")
	cmd.Flags().String("md5", "", "MD5 checksum of the assembled file")

	return cmd
}

func newUploadsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel UPLOAD_ID",
		Short: "Cancel an upload",
		Long:  "Cancel an upload; no parts can be added afterwards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Uploads().Cancel(ctx, args[0])
			})
		},
	}
}
