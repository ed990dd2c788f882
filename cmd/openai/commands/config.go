package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys, shared by viper, the config file and "config set".
const (
	keyBaseURL      = "base_url"
	keyAPIKey       = "api_key"
	keyOrganization = "organization"
	keyProject      = "project"
	keyOutput       = "output"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL      string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	APIKey       string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	Project      string `json:"project,omitempty"      yaml:"project,omitempty"`
	Output       string `json:"output,omitempty"       yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.openai-client/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskAPIKey(config.APIKey)

			return renderConfig(cmd.OutOrStdout(), config, viper.GetString(keyOutput))
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of base_url, api_key, organization, project or output",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], "")
			if err != nil && !errors.Is(err, constants.ErrEmptyAPIKey) {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// loadConfig returns the effective configuration. Flags override environment
// variables, which override the config file.
func loadConfig() *Config {
	return &Config{
		BaseURL:      viper.GetString(keyBaseURL),
		APIKey:       viper.GetString(keyAPIKey),
		Organization: viper.GetString(keyOrganization),
		Project:      viper.GetString(keyProject),
		Output:       viper.GetString(keyOutput),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyBaseURL:
		config.BaseURL = value
	case keyAPIKey:
		config.APIKey = strings.TrimSpace(value)
		if config.APIKey == "" {
			return constants.ErrEmptyAPIKey
		}
	case keyOrganization:
		config.Organization = value
	case keyProject:
		config.Project = value
	case keyOutput:
		if value != "" && !validOutput(value) {
			return fmt.Errorf("%q: %w", value, constants.ErrInvalidOutput)
		}

		config.Output = value
	default:
		return fmt.Errorf("%q: %w", key, constants.ErrUnknownConfigKey)
	}

	return nil
}

func validOutput(format string) bool {
	switch format {
	case constants.FormatJSON, constants.FormatYAML, constants.FormatTable, constants.FormatRaw:
		return true
	default:
		return false
	}
}

// configFilePath returns the --config file, the file viper loaded, or the
// default location under the home directory.
func configFilePath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// readConfigFile reads only the persisted settings, leaving out flags and
// environment variables. A missing file yields an empty config.
func readConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// path is the user's own configuration file
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func maskAPIKey(key string) string {
	const visible = 4

	if key == "" {
		return ""
	}

	if len(key) <= visible*2 {
		return Masked
	}

	return key[:3] + Masked + key[len(key)-visible:]
}

func renderConfig(w io.Writer, config *Config, format string) error {
	switch format {
	case constants.FormatJSON, constants.FormatRaw:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(config)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(config)
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		_ = table.Append("Base URL", valueOrNA(config.BaseURL))
		_ = table.Append("API Key", valueOrNA(config.APIKey))
		_ = table.Append("Organization", valueOrNA(config.Organization))
		_ = table.Append("Project", valueOrNA(config.Project))
		_ = table.Append("Output", valueOrNA(config.Output))

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
