package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/awlabs/awmcp/internal/contract"
	"github.com/awlabs/awmcp/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteEvents outputs fetched events, dispatching on the requested format.
func WriteEvents(bucketID string, events []schema.Event, format schema.ResponseFormat, outputFile string, maxSummaryWidth int) error {
	if format == schema.JSONFormat {
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeJSON(w, events)
		}, "Wrote JSON")
	}
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeEventsTable(w, bucketID, events, maxSummaryWidth)
	}, "Wrote table")
}

// WriteCount prints the event count summary with optional filter echoes.
func WriteCount(bucketID string, count int64, start, end string, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Bucket %s: %d events\n", bucketID, count); err != nil {
			return err
		}
		if start != "" {
			if _, err := fmt.Fprintf(w, "  From: %s\n", start); err != nil {
				return err
			}
		}
		if end != "" {
			if _, err := fmt.Fprintf(w, "  To:   %s\n", end); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote count")
}

// writeEventsTable renders events in server order as a terminal table.
func writeEventsTable(w io.Writer, bucketID string, events []schema.Event, maxSummaryWidth int) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Timestamp", "Duration(s)", "Label", "Summary"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i := range events {
		e := &events[i]
		data = append(data, []string{
			e.Timestamp.Format(schema.DateTimeFormat),
			fmt.Sprintf("%.1f", e.Duration),
			contract.GetColorLabel(e.Duration),
			TruncateSummary(summarizeData(e.Data), maxSummaryWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d events from %s\n", len(events), bucketID)
	return err
}

// summarizeData flattens an event's data map into a single "key=value" line
// with sorted keys.
func summarizeData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, schema.FormatDataValue(data[k])))
	}
	return strings.Join(parts, " ")
}

// TruncateSummary shortens a summary cell to maxWidth runes with a trailing
// ellipsis.
func TruncateSummary(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}
