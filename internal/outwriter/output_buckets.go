package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/awlabs/awmcp/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteBuckets outputs the bucket listing, dispatching on the requested
// format.
func WriteBuckets(buckets map[string]schema.Bucket, format schema.ResponseFormat, outputFile string) error {
	if format == schema.JSONFormat {
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeJSON(w, buckets)
		}, "Wrote JSON")
	}
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeBucketsTable(w, buckets)
	}, "Wrote table")
}

// writeBucketsTable renders buckets as a terminal table sorted by ID.
func writeBucketsTable(w io.Writer, buckets map[string]schema.Bucket) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Client", "Type", "Hostname", "Created"})

	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var data [][]string
	for _, id := range ids {
		b := buckets[id]
		created := ""
		if b.Created != nil {
			created = b.Created.Format(schema.DateTimeFormat)
		}
		data = append(data, []string{b.ID, b.Client, b.Type, b.Hostname, created})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Found %d buckets\n", len(buckets))
	return err
}

// writeJSON writes any value as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
