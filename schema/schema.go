// Package schema defines the ActivityWatch domain types shared by the
// client, the MCP handlers, and the CLI writers.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateTimeFormat is the timestamp layout used in markdown output.
const DateTimeFormat = "2006-01-02 15:04:05"

// Bucket is a container that groups events by watcher type and hostname.
// Only the ID is guaranteed by the server; everything else is optional.
type Bucket struct {
	// ID is the unique bucket identifier, e.g. "aw-watcher-window_myhost".
	ID string `json:"id"`

	// Client is the name of the watcher/client that created the bucket.
	Client string `json:"client,omitempty"`

	// Type describes the events stored (e.g. "currentwindow", "afkstatus").
	Type string `json:"type,omitempty"`

	// Hostname is where the bucket was created.
	Hostname string `json:"hostname,omitempty"`

	// Created is when the bucket was created.
	Created *time.Time `json:"created,omitempty"`

	// Data holds additional free-form metadata.
	Data map[string]any `json:"data,omitempty"`

	// LastUpdated is the last time the bucket received an event.
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Event is a timestamped activity record with a duration and free-form data.
type Event struct {
	// ID is assigned by the server and absent before persistence there.
	ID *int64 `json:"id,omitempty"`

	// Timestamp is the event start time.
	Timestamp time.Time `json:"timestamp"`

	// Duration is the event length in fractional seconds.
	Duration float64 `json:"duration"`

	// Data carries event-specific fields (e.g. app name, window title).
	Data map[string]any `json:"data"`
}

// UnmarshalJSON enforces that timestamp, duration and data are present.
// A partial event indicates a contract mismatch with the server and must
// fail to decode rather than silently yield zero values.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID        *int64         `json:"id"`
		Timestamp *time.Time     `json:"timestamp"`
		Duration  *float64       `json:"duration"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Timestamp == nil {
		return errors.New("event is missing required field 'timestamp'")
	}
	if raw.Duration == nil {
		return errors.New("event is missing required field 'duration'")
	}
	if raw.Data == nil {
		return errors.New("event is missing required field 'data'")
	}
	e.ID = raw.ID
	e.Timestamp = *raw.Timestamp
	e.Duration = *raw.Duration
	e.Data = raw.Data
	return nil
}

// ToMarkdown renders the bucket as a markdown subsection. Absent optional
// fields are omitted entirely instead of showing empty labels.
func (b *Bucket) ToMarkdown() string {
	lines := []string{fmt.Sprintf("## %s", b.ID)}

	if b.Client != "" {
		lines = append(lines, fmt.Sprintf("- **Client**: %s", b.Client))
	}
	if b.Type != "" {
		lines = append(lines, fmt.Sprintf("- **Type**: %s", b.Type))
	}
	if b.Hostname != "" {
		lines = append(lines, fmt.Sprintf("- **Hostname**: %s", b.Hostname))
	}
	if b.Created != nil {
		lines = append(lines, fmt.Sprintf("- **Created**: %s", b.Created.Format(DateTimeFormat)))
	}
	if b.LastUpdated != nil {
		lines = append(lines, fmt.Sprintf("- **Last Updated**: %s", b.LastUpdated.Format(DateTimeFormat)))
	}

	return strings.Join(lines, "\n")
}

// ToMarkdown renders the event as a markdown subsection with a
// timestamp/duration heading followed by one labeled line per data field.
func (e *Event) ToMarkdown() string {
	lines := []string{fmt.Sprintf("### %s (%.1fs)", e.Timestamp.Format(DateTimeFormat), e.Duration)}

	// Sorted for stable output; the upstream map carries no order anyway.
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", k, FormatDataValue(e.Data[k])))
	}

	return strings.Join(lines, "\n")
}

// FormatDataValue renders a free-form JSON value for markdown output.
// Plain strings are rendered unquoted; everything else uses its canonical
// JSON encoding.
func FormatDataValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(encoded)
}
