// Package mcp provides the Model Context Protocol (MCP) server that exposes
// ActivityWatch queries as tools.
package mcp

import (
	"context"

	"github.com/awlabs/awmcp/internal/awclient"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverInstructions is advertised to the agent at initialization time.
const serverInstructions = "ActivityWatch MCP Server - Query your ActivityWatch time tracking data. " +
	"Use aw_list_buckets to see available data sources, then aw_get_events to retrieve activity logs."

// NewMCPServer initializes and configures the ActivityWatch MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(client *awclient.Client) *server.MCPServer {
	s := server.NewMCPServer(
		"ActivityWatch MCP Server",
		"1.0.0",
		server.WithLogging(),
		server.WithInstructions(serverInstructions),
	)

	h := &toolHandler{
		client: client,
	}

	// --- 1. Tool: aw_list_buckets ---
	s.AddTool(mcp.NewTool("aw_list_buckets",
		mcp.WithDescription("List all ActivityWatch buckets. Buckets are containers that group events by watcher type and hostname (e.g., aw-watcher-window_hostname for window tracking events)."),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' (default) or 'json'."), mcp.Enum("markdown", "json")),
	), h.handleListBuckets)

	// --- 2. Tool: aw_get_bucket ---
	s.AddTool(mcp.NewTool("aw_get_bucket",
		mcp.WithDescription("Get detailed information about a specific ActivityWatch bucket by its ID. Returns bucket metadata including type, hostname, and creation time."),
		mcp.WithString("bucket_id", mcp.Description("The bucket ID to retrieve."), mcp.Required()),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' (default) or 'json'."), mcp.Enum("markdown", "json")),
	), h.handleGetBucket)

	// --- 3. Tool: aw_get_events ---
	s.AddTool(mcp.NewTool("aw_get_events",
		mcp.WithDescription("Get events from an ActivityWatch bucket. Events contain timestamped activity data such as window titles, app names, or AFK status."),
		mcp.WithString("bucket_id", mcp.Description("The bucket ID to get events from (e.g., 'aw-watcher-window_hostname')."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Maximum number of events to return (default: 100).")),
		mcp.WithString("start", mcp.Description("Start time in ISO 8601 format (e.g., '2024-01-01T00:00:00Z').")),
		mcp.WithString("end", mcp.Description("End time in ISO 8601 format (e.g., '2024-01-01T23:59:59Z').")),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' (default) or 'json'."), mcp.Enum("markdown", "json")),
	), h.handleGetEvents)

	// --- 4. Tool: aw_get_event_count ---
	s.AddTool(mcp.NewTool("aw_get_event_count",
		mcp.WithDescription("Get the total count of events in an ActivityWatch bucket. Useful for understanding data volume before fetching events. Optionally filter by time range."),
		mcp.WithString("bucket_id", mcp.Description("The bucket ID to count events from."), mcp.Required()),
		mcp.WithString("start", mcp.Description("Start time in ISO 8601 format.")),
		mcp.WithString("end", mcp.Description("End time in ISO 8601 format.")),
	), h.handleGetEventCount)

	return s
}

// StartMCPServer starts the ActivityWatch MCP server over stdio.
func StartMCPServer(_ context.Context, client *awclient.Client) error {
	s := NewMCPServer(client)
	return server.ServeStdio(s)
}
