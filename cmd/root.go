package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/awlabs/awmcp/internal/awclient"
	"github.com/awlabs/awmcp/internal/contract"
	"github.com/awlabs/awmcp/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by release infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// client is the shared ActivityWatch API client, constructed once per run.
var client *awclient.Client

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "awmcp",
	Short:              "Query an ActivityWatch server from the terminal or over MCP.",
	Long:               `awmcp talks to a running aw-server and exposes its buckets and events both as terminal commands and as MCP tools for AI agents.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".awmcp") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AWMCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// The canonical ActivityWatch variable is honored alongside AWMCP_URL.
	_ = viper.BindEnv("url", "AWMCP_URL", "ACTIVITYWATCH_URL")

	// Set defaults in Viper
	viper.SetDefault("url", contract.DefaultBaseURL)
	viper.SetDefault("timeout", contract.DefaultTimeoutSeconds)
	viper.SetDefault("limit", schema.DefaultEventsLimit)
	viper.SetDefault("output", "table")
}

// sharedSetup unmarshals config, runs validation, and builds the shared
// API client.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation. This populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Build the shared client; it is read-only after this point.
	client = awclient.New(cfg.BaseURL, cfg.Timeout)

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// outputFormat resolves the --output flag to a response format. Anything
// other than "json" renders as a table.
func outputFormat() schema.ResponseFormat {
	if viper.GetString("output") == "json" {
		return schema.JSONFormat
	}
	return schema.MarkdownFormat
}

// requireBucketID trims and validates the positional bucket ID argument.
func requireBucketID(args []string) (string, error) {
	bucketID := strings.TrimSpace(args[0])
	if bucketID == "" {
		return "", fmt.Errorf("bucket ID cannot be empty")
	}
	return bucketID, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
