package commands

import (
	"context"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/spf13/cobra"
)

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Generate and edit images",
		Long:    "Generate images from prompts, edit images and create variations",
	}

	cmd.AddCommand(newImagesGenerateCommand())
	cmd.AddCommand(newImagesEditCommand())
	cmd.AddCommand(newImagesVariationCommand())

	return cmd
}

func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", "", "image model")
	cmd.Flags().Int("n", 1, "number of images")
	cmd.Flags().String("size", "", "image size, e.g. 1024x1024")
	cmd.Flags().String("response-format", "", "url or b64_json")
	cmd.Flags().String("user", "", "end-user identifier")
}

func newImagesGenerateCommand() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate images",
		Long:  "Generate images from a text prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateImageRequest{
				Prompt:         prompt,
				Model:          optionalFlag(cmd, "model", cmd.Flags().GetString),
				N:              optionalFlag(cmd, "n", cmd.Flags().GetInt),
				Quality:        optionalFlag(cmd, "quality", cmd.Flags().GetString),
				ResponseFormat: optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				Size:           optionalFlag(cmd, "size", cmd.Flags().GetString),
				Style:          optionalFlag(cmd, "style", cmd.Flags().GetString),
				User:           optionalFlag(cmd, "user", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Images().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "description of the image")
	cmd.Flags().String("quality", "", "standard or hd")
	cmd.Flags().String("style", "", "vivid or natural")
	addImageFlags(cmd)
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func newImagesEditCommand() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "edit IMAGE",
		Short: "Edit an image",
		Long:  "Edit or extend a square PNG given a prompt and an optional mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask := openai.None[openai.FileInput]()
			if path, ok := optionalFlag(cmd, "mask", cmd.Flags().GetString).Get(); ok {
				mask = openai.Some(openai.FileFromPath(path))
			}

			req := &openai.CreateImageEditRequest{
				Image:          openai.FileFromPath(args[0]),
				Prompt:         prompt,
				Mask:           mask,
				Model:          optionalFlag(cmd, "model", cmd.Flags().GetString),
				N:              optionalFlag(cmd, "n", cmd.Flags().GetInt),
				Size:           optionalFlag(cmd, "size", cmd.Flags().GetString),
				ResponseFormat: optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				User:           optionalFlag(cmd, "user", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Images().Edit(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "description of the edit")
	cmd.Flags().String("mask", "", "PNG whose transparent pixels mark the editable area")
	addImageFlags(cmd)
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func newImagesVariationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variation IMAGE",
		Short: "Create image variations",
		Long:  "Create variations of a square PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &openai.CreateImageVariationRequest{
				Image:          openai.FileFromPath(args[0]),
				Model:          optionalFlag(cmd, "model", cmd.Flags().GetString),
				N:              optionalFlag(cmd, "n", cmd.Flags().GetInt),
				ResponseFormat: optionalFlag(cmd, "response-format", cmd.Flags().GetString),
				Size:           optionalFlag(cmd, "size", cmd.Flags().GetString),
				User:           optionalFlag(cmd, "user", cmd.Flags().GetString),
			}

			return execute(cmd, func(ctx context.Context, client openai.Client) (*openai.Response, error) {
				return client.Images().CreateVariation(ctx, req)
			})
		},
	}

	addImageFlags(cmd)

	return cmd
}
