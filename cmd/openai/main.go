package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/openai-client/cmd/openai/commands"
	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "openai",
	Short: "OpenAI API CLI",
	Long: `A command-line interface for the OpenAI REST API.

Every command sends exactly one request and prints the response. The API key
is read from --api-key, OPENAI_API_KEY (also from a .env file) or the config
file written by "openai login".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch viper.GetString("output") {
		case constants.FormatJSON, constants.FormatYAML, constants.FormatTable, constants.FormatRaw:
			return nil
		default:
			return constants.ErrInvalidOutput
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.openai-client/config.yml)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default https://api.openai.com)")
	rootCmd.PersistentFlags().String("api-key", "", "API key")
	rootCmd.PersistentFlags().String("organization", "", "organization ID sent as OpenAI-Organization")
	rootCmd.PersistentFlags().String("project", "", "project ID sent as OpenAI-Project")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatJSON, "output format (json, yaml, table, raw)")
	rootCmd.PersistentFlags().String("field", "", "print only this gjson path of the response, e.g. data.#.id")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests and responses to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("organization", rootCmd.PersistentFlags().Lookup("organization"))
	_ = viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("field", rootCmd.PersistentFlags().Lookup("field"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAudioCommand())
	rootCmd.AddCommand(commands.NewBatchesCommand())
	rootCmd.AddCommand(commands.NewChatCommand())
	rootCmd.AddCommand(commands.NewCompletionsCommand())
	rootCmd.AddCommand(commands.NewEmbeddingsCommand())
	rootCmd.AddCommand(commands.NewFilesCommand())
	rootCmd.AddCommand(commands.NewFineTuningCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewModelsCommand())
	rootCmd.AddCommand(commands.NewModerationsCommand())
	rootCmd.AddCommand(commands.NewUploadsCommand())
}

func initConfig() {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.openai-client/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. OPENAI_API_KEY
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
