// Package parquet exports fetched events to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/awlabs/awmcp/schema"
	"github.com/parquet-go/parquet-go"
)

// EventRecord is the flat row shape written to Parquet. Free-form event
// data is carried as a JSON-encoded string column so arbitrary upstream
// schemas survive the export.
type EventRecord struct {
	// BucketID identifies the bucket the event was fetched from
	BucketID string `parquet:"bucket_id,snappy"`

	// EventID is the server-assigned event ID (nullable)
	EventID *int64 `parquet:"event_id,optional,snappy"`

	// Timestamp is the event start time (stored with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// DurationSeconds is the event length in fractional seconds
	DurationSeconds float64 `parquet:"duration_seconds,snappy"`

	// Data is the JSON-encoded event payload
	Data string `parquet:"data,snappy"`
}

// WriteEventsParquet writes a slice of EventRecord structs to a Parquet
// file. The schema is inferred from the struct tags.
func WriteEventsParquet(data []EventRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[EventRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertEvents maps fetched events into Parquet rows for a bucket.
func ConvertEvents(bucketID string, events []schema.Event) ([]EventRecord, error) {
	records := make([]EventRecord, len(events))
	for i := range events {
		e := &events[i]
		encoded, err := json.Marshal(e.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode event data: %w", err)
		}
		records[i] = EventRecord{
			BucketID:        bucketID,
			EventID:         e.ID,
			Timestamp:       e.Timestamp,
			DurationSeconds: e.Duration,
			Data:            string(encoded),
		}
	}
	return records, nil
}
