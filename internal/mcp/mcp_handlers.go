package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/awlabs/awmcp/internal/awclient"
	"github.com/awlabs/awmcp/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers. The client
// is shared read-only across concurrent invocations.
type toolHandler struct {
	client *awclient.Client
}

func (h *toolHandler) handleListBuckets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := schema.ParseResponseFormat(request.GetString("response_format", ""))

	buckets, err := h.client.ListBuckets(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list buckets: %v", err)), nil
	}

	if format == schema.JSONFormat {
		return jsonResult(buckets)
	}

	lines := []string{
		"# ActivityWatch Buckets",
		"",
		fmt.Sprintf("Found %d buckets:", len(buckets)),
		"",
	}
	for _, id := range sortedBucketIDs(buckets) {
		bucket := buckets[id]
		lines = append(lines, bucket.ToMarkdown(), "")
	}

	return mcp.NewToolResultText(schema.TruncateResponse(strings.Join(lines, "\n"))), nil
}

func (h *toolHandler) handleGetBucket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bucketID := request.GetString("bucket_id", "")
	if strings.TrimSpace(bucketID) == "" {
		return mcp.NewToolResultError("Bucket ID cannot be empty"), nil
	}
	format := schema.ParseResponseFormat(request.GetString("response_format", ""))

	bucket, err := h.client.GetBucket(ctx, bucketID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get bucket: %v", err)), nil
	}

	if format == schema.JSONFormat {
		return jsonResult(bucket)
	}

	lines := []string{
		"# Bucket Details",
		"",
		bucket.ToMarkdown(),
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (h *toolHandler) handleGetEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bucketID := request.GetString("bucket_id", "")
	if strings.TrimSpace(bucketID) == "" {
		return mcp.NewToolResultError("Bucket ID cannot be empty"), nil
	}
	format := schema.ParseResponseFormat(request.GetString("response_format", ""))
	start := request.GetString("start", "")
	end := request.GetString("end", "")

	// The resolved limit drives both the upstream query and the
	// limit-reached notice below. An explicit zero passes through verbatim.
	limit := request.GetInt("limit", schema.DefaultEventsLimit)

	events, err := h.client.GetEvents(ctx, bucketID, &limit, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get events: %v", err)), nil
	}

	if format == schema.JSONFormat {
		return jsonResult(events)
	}

	lines := []string{
		fmt.Sprintf("# Events from %s", bucketID),
		"",
		fmt.Sprintf("Showing %d events:", len(events)),
		"",
	}
	for i := range events {
		lines = append(lines, events[i].ToMarkdown(), "")
	}
	if len(events) >= limit {
		lines = append(lines, fmt.Sprintf("_Limit of %d reached. Use pagination to see more._", limit))
	}

	return mcp.NewToolResultText(schema.TruncateResponse(strings.Join(lines, "\n"))), nil
}

func (h *toolHandler) handleGetEventCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bucketID := request.GetString("bucket_id", "")
	if strings.TrimSpace(bucketID) == "" {
		return mcp.NewToolResultError("Bucket ID cannot be empty"), nil
	}
	start := request.GetString("start", "")
	end := request.GetString("end", "")

	count, err := h.client.GetEventCount(ctx, bucketID, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get event count: %v", err)), nil
	}

	lines := []string{
		fmt.Sprintf("# Event Count for %s", bucketID),
		"",
		fmt.Sprintf("**Total Events**: %d", count),
	}
	if start != "" {
		lines = append(lines, fmt.Sprintf("**From**: %s", start))
	}
	if end != "" {
		lines = append(lines, fmt.Sprintf("**To**: %s", end))
	}

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// jsonResult marshals a value as indented JSON. JSON output is never
// truncated.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode JSON response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func sortedBucketIDs(buckets map[string]schema.Bucket) []string {
	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
