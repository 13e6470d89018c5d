// Package contract holds the configuration contract and shared helpers
// used across the CLI commands and the MCP server.
package contract
