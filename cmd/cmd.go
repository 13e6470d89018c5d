// Package cmd defines the command-line interface for awmcp.
package cmd

import (
	"github.com/awlabs/awmcp/internal/contract"
	"github.com/awlabs/awmcp/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(bucketsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Connection flags, shared by every subcommand.
	rootCmd.PersistentFlags().String("url", contract.DefaultBaseURL, "Base URL of the ActivityWatch REST API")
	rootCmd.PersistentFlags().Int("timeout", contract.DefaultTimeoutSeconds, "HTTP request timeout in seconds")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is .awmcp.yaml in . or $HOME)")

	// Output flags.
	rootCmd.PersistentFlags().String("output", "table", "Output format: table or json")
	rootCmd.PersistentFlags().String("output-file", "", "Write output to a file instead of stdout")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override for summary truncation (0 = auto-detect)")

	// Query filters, used by events, count, and export.
	rootCmd.PersistentFlags().Int("limit", schema.DefaultEventsLimit, "Maximum number of events to fetch")
	rootCmd.PersistentFlags().String("start", "", "Start of the time window (ISO 8601)")
	rootCmd.PersistentFlags().String("end", "", "End of the time window (ISO 8601)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Cannot bind flags", err)
	}
}
