package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewFineTuningCommand creates the fine-tuning command group.
func NewFineTuningCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fine-tuning",
		Aliases: []string{"ft"},
		Short:   "Manage fine-tuning jobs",
		Long:    "Create, inspect and cancel fine-tuning jobs and list their events and checkpoints",
	}

	cmd.AddCommand(newFineTuningCreateCommand())
	cmd.AddCommand(newFineTuningListCommand())
	cmd.AddCommand(newFineTuningGetCommand())
	cmd.AddCommand(newFineTuningCancelCommand())
	cmd.AddCommand(newFineTuningEventsCommand())
	cmd.AddCommand(newFineTuningCheckpointsCommand())

	return cmd
}

func newFineTuningCreateCommand() *cobra.Command {
	var model, trainingFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a fine-tuning job",
		Long:  "Create a job that fine-tunes a model from an uploaded training file",
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := parseMetadata(cmd)
			if err != nil {
				return err
			}

			req := &openai.CreateFineTuningJobRequest{
				Model:          model,
				TrainingFile:   trainingFile,
				Suffix:         optionalFlag(cmd, "suffix", cmd.Flags().GetString),
				ValidationFile: optionalFlag(cmd, "validation-file", cmd.Flags().GetString),
				Seed:           optionalFlag(cmd, "seed", cmd.Flags().GetInt),
				Metadata:       metadata,
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "base model to fine-tune")
	cmd.Flags().StringVar(&trainingFile, "training-file", "", "file uploaded with purpose fine-tune")
	cmd.Flags().String("suffix", "", "suffix of the fine-tuned model name")
	cmd.Flags().String("validation-file", "", "file with validation data")
	cmd.Flags().Int("seed", 0, "seed for reproducible jobs")
	cmd.Flags().StringArray("metadata", nil, "metadata as KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("training-file")

	return cmd
}

func newFineTuningListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fine-tuning jobs",
		Long:  "List the organization's fine-tuning jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.ListFineTuningJobsRequest{
				After: optionalFlag(cmd, "after", cmd.Flags().GetString),
				Limit: optionalFlag(cmd, "limit", cmd.Flags().GetInt),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().List(ctx, req)
			})
		},
	}

	addCursorFlags(cmd)

	return cmd
}

func newFineTuningGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get JOB_ID",
		Short: "Get a fine-tuning job",
		Long:  "Display details of a fine-tuning job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().Retrieve(ctx, args[0])
			})
		},
	}
}

func newFineTuningCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel JOB_ID",
		Short: "Cancel a fine-tuning job",
		Long:  "Cancel a running fine-tuning job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().Cancel(ctx, args[0])
			})
		},
	}
}

func newFineTuningEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events JOB_ID",
		Short: "List job events",
		Long:  "List status updates for a fine-tuning job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.ListFineTuningEventsRequest{
				JobID: args[0],
				After: optionalFlag(cmd, "after", cmd.Flags().GetString),
				Limit: optionalFlag(cmd, "limit", cmd.Flags().GetInt),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().ListEvents(ctx, req)
			})
		},
	}

	addCursorFlags(cmd)

	return cmd
}

func newFineTuningCheckpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoints JOB_ID",
		Short: "List job checkpoints",
		Long:  "List checkpoints saved by a fine-tuning job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.ListFineTuningCheckpointsRequest{
				JobID: args[0],
				After: optionalFlag(cmd, "after", cmd.Flags().GetString),
				Limit: optionalFlag(cmd, "limit", cmd.Flags().GetInt),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.FineTuning().ListCheckpoints(ctx, req)
			})
		},
	}

	addCursorFlags(cmd)

	return cmd
}
