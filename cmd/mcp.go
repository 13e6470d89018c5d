package cmd

import (
	"github.com/awlabs/awmcp/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the ActivityWatch MCP server",
	Long:    `Launch an MCP server over stdio that allows AI agents to query ActivityWatch buckets and events via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Stdout carries the protocol stream; diagnostics go to stderr.
		return mcp.StartMCPServer(rootCtx, client)
	},
}
