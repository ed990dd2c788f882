package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/fivetwenty-io/openai-client/pkg/openaiclient"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Read an API key without echoing it, verify it by listing models and save it to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

			apiKey, err := readAPIKey(cmd.InOrStdin())

			_, _ = fmt.Fprintln(cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			if !skipVerify {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}

				err = verifyAPIKey(ctx, apiKey)
				if err != nil {
					return err
				}
			}

			config, err := readConfigFile()
			if err != nil {
				return err
			}

			config.APIKey = apiKey

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			path, _ := configFilePath()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the key without calling the API")

	return cmd
}

// readAPIKey reads the key without echo from a terminal, or one line from any
// other input.
func readAPIKey(in io.Reader) (string, error) {
	var key string

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		key = string(raw)
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		key = line
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", constants.ErrEmptyAPIKey
	}

	return key, nil
}

func verifyAPIKey(ctx context.Context, apiKey string) error {
	config := loadConfig()

	client, err := openaiclient.New(ctx, &openai.Config{
		BaseURL:      config.BaseURL,
		APIKey:       apiKey,
		Organization: config.Organization,
		Project:      config.Project,
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	_, err = client.Models().List(ctx)
	if err != nil {
		if openai.IsUnauthorized(err) {
			return fmt.Errorf("API key rejected: %w", err)
		}

		return fmt.Errorf("failed to verify API key against %s: %w", client.BaseURL(), err)
	}

	return nil
}
