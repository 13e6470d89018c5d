// main is the entry point for the awmcp CLI and MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/awlabs/awmcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
