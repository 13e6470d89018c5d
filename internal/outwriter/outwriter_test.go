package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/awlabs/awmcp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBucketsTable(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	buckets := map[string]schema.Bucket{
		"aw-watcher-window_host1": {
			ID:       "aw-watcher-window_host1",
			Client:   "aw-watcher-window",
			Type:     "currentwindow",
			Hostname: "host1",
			Created:  &created,
		},
		"aw-watcher-afk_host1": {ID: "aw-watcher-afk_host1"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBucketsTable(&buf, buckets))

	out := buf.String()
	assert.Contains(t, out, "aw-watcher-window_host1")
	assert.Contains(t, out, "currentwindow")
	assert.Contains(t, out, "2024-01-01 00:00:00")
	assert.Contains(t, out, "aw-watcher-afk_host1")
	assert.Contains(t, out, "Found 2 buckets")
}

func TestWriteEventsTable(t *testing.T) {
	events := []schema.Event{
		{
			Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Duration:  4200,
			Data:      map[string]any{"app": "Firefox", "title": "Docs"},
		},
		{
			Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			Duration:  2.5,
			Data:      map[string]any{"status": "afk"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeEventsTable(&buf, "b1", events, 70))

	out := buf.String()
	assert.Contains(t, out, "2024-01-01 12:00:00")
	assert.Contains(t, out, "4200.0")
	assert.Contains(t, out, "Long")
	assert.Contains(t, out, "Blip")
	assert.Contains(t, out, "app=Firefox title=Docs")
	assert.Contains(t, out, "Showing 2 events from b1")
}

func TestWriteEventsJSON(t *testing.T) {
	var buf bytes.Buffer
	events := []schema.Event{
		{
			Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Duration:  1,
			Data:      map[string]any{"app": "Code"},
		},
	}
	require.NoError(t, writeJSON(&buf, events))
	assert.Contains(t, buf.String(), `"app": "Code"`)
	assert.Contains(t, buf.String(), `"duration": 1`)
}

func TestSummarizeDataSortsKeys(t *testing.T) {
	got := summarizeData(map[string]any{
		"title": "main.go",
		"app":   "Code",
		"pid":   float64(99),
	})
	assert.Equal(t, "app=Code pid=99 title=main.go", got)
}

func TestTruncateSummary(t *testing.T) {
	assert.Equal(t, "short", TruncateSummary("short", 10))
	assert.Equal(t, "exactly-10", TruncateSummary("exactly-10", 10))
	assert.Equal(t, "this is...", TruncateSummary("this is far too long", 10))
	// Rune-aware: multi-byte characters are not split.
	assert.Equal(t, "あいう...", TruncateSummary("あいうえおかきくけこ", 6))
}

func TestGetMaxTitleWidth(t *testing.T) {
	assert.Equal(t, 55, GetMaxTitleWidth(100))
	assert.Equal(t, 70, GetMaxTitleWidth(200))
	assert.Equal(t, 15, GetMaxTitleWidth(50))
}
