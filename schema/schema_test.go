package schema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketDecodeFull(t *testing.T) {
	payload := `{
		"id": "aw-watcher-window_testhost",
		"client": "aw-watcher-window",
		"type": "currentwindow",
		"hostname": "testhost",
		"created": "2024-01-01T00:00:00Z",
		"data": {"color": "blue"},
		"last_updated": "2024-06-01T12:00:00Z"
	}`

	var b Bucket
	require.NoError(t, json.Unmarshal([]byte(payload), &b))
	assert.Equal(t, "aw-watcher-window_testhost", b.ID)
	assert.Equal(t, "aw-watcher-window", b.Client)
	assert.Equal(t, "currentwindow", b.Type)
	assert.Equal(t, "testhost", b.Hostname)
	require.NotNil(t, b.Created)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), b.Created.UTC())
	assert.Equal(t, "blue", b.Data["color"])
	require.NotNil(t, b.LastUpdated)
}

func TestBucketDecodeMinimal(t *testing.T) {
	var b Bucket
	require.NoError(t, json.Unmarshal([]byte(`{"id":"bare"}`), &b))
	assert.Equal(t, "bare", b.ID)
	assert.Empty(t, b.Client)
	assert.Nil(t, b.Created)
	assert.Nil(t, b.LastUpdated)
	assert.Nil(t, b.Data)
}

func TestBucketMarkdownOmitsAbsentFields(t *testing.T) {
	created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		bucket   Bucket
		contains []string
		excludes []string
	}{
		{
			name:     "id only",
			bucket:   Bucket{ID: "bare"},
			contains: []string{"## bare"},
			excludes: []string{"**Client**", "**Type**", "**Hostname**", "**Created**", "**Last Updated**"},
		},
		{
			name:     "partial fields",
			bucket:   Bucket{ID: "b1", Client: "aw-watcher-afk", Created: &created},
			contains: []string{"## b1", "- **Client**: aw-watcher-afk", "- **Created**: 2024-03-15 09:30:00"},
			excludes: []string{"**Type**", "**Hostname**", "**Last Updated**"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			md := tc.bucket.ToMarkdown()
			for _, want := range tc.contains {
				assert.Contains(t, md, want)
			}
			for _, unwanted := range tc.excludes {
				assert.NotContains(t, md, unwanted)
			}
		})
	}
}

func TestEventDecodeRequiredFields(t *testing.T) {
	valid := `{"id":1,"timestamp":"2024-01-01T12:00:00Z","duration":60.5,"data":{"app":"Firefox"}}`

	var e Event
	require.NoError(t, json.Unmarshal([]byte(valid), &e))
	require.NotNil(t, e.ID)
	assert.Equal(t, int64(1), *e.ID)
	assert.Equal(t, 60.5, e.Duration)
	assert.Equal(t, "Firefox", e.Data["app"])

	tests := []struct {
		name    string
		payload string
	}{
		{"missing timestamp", `{"duration":60.5,"data":{"app":"Firefox"}}`},
		{"missing duration", `{"timestamp":"2024-01-01T12:00:00Z","data":{"app":"Firefox"}}`},
		{"missing data", `{"timestamp":"2024-01-01T12:00:00Z","duration":60.5}`},
		{"null data", `{"timestamp":"2024-01-01T12:00:00Z","duration":60.5,"data":null}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e Event
			assert.Error(t, json.Unmarshal([]byte(tc.payload), &e))
		})
	}
}

func TestEventDecodeWithoutID(t *testing.T) {
	var e Event
	payload := `{"timestamp":"2024-01-01T12:00:00Z","duration":0,"data":{}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &e))
	assert.Nil(t, e.ID)
	assert.NotNil(t, e.Data)
}

func TestEventMarkdown(t *testing.T) {
	e := Event{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Duration:  60.5,
		Data: map[string]any{
			"app":    "Firefox",
			"title":  "Example Page",
			"pid":    float64(4242),
			"active": true,
		},
	}

	md := e.ToMarkdown()
	assert.True(t, strings.HasPrefix(md, "### 2024-01-01 12:00:00 (60.5s)"), md)
	// Plain strings are unquoted; other values use canonical JSON.
	assert.Contains(t, md, "- **app**: Firefox")
	assert.Contains(t, md, "- **title**: Example Page")
	assert.Contains(t, md, "- **pid**: 4242")
	assert.Contains(t, md, "- **active**: true")
}

func TestBucketRoundTrip(t *testing.T) {
	created := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	original := Bucket{
		ID:       "aw-watcher-window_host1",
		Client:   "aw-watcher-window",
		Type:     "currentwindow",
		Hostname: "host1",
		Created:  &created,
		Data:     map[string]any{"note": "primary"},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Bucket
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestEventRoundTrip(t *testing.T) {
	id := int64(77)
	original := Event{
		ID:        &id,
		Timestamp: time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC),
		Duration:  12.25,
		Data:      map[string]any{"app": "Terminal", "title": "zsh"},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestParseResponseFormat(t *testing.T) {
	assert.Equal(t, MarkdownFormat, ParseResponseFormat(""))
	assert.Equal(t, MarkdownFormat, ParseResponseFormat("markdown"))
	assert.Equal(t, MarkdownFormat, ParseResponseFormat("xml"))
	assert.Equal(t, JSONFormat, ParseResponseFormat("json"))
}

func TestTruncateResponse(t *testing.T) {
	t.Run("at limit unchanged", func(t *testing.T) {
		s := strings.Repeat("a", CharacterLimit)
		assert.Equal(t, s, TruncateResponse(s))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		s := strings.Repeat("a", CharacterLimit+500)
		out := TruncateResponse(s)
		assert.True(t, strings.HasPrefix(out, strings.Repeat("a", CharacterLimit)))
		assert.NotEqual(t, 'a', rune(out[CharacterLimit]))
		assert.Contains(t, out, "_Response truncated at 25000 characters.")
	})

	t.Run("multi-byte boundary", func(t *testing.T) {
		// Each rune is 3 bytes; byte slicing here would split a character.
		s := strings.Repeat("あ", CharacterLimit+10)
		out := TruncateResponse(s)
		runes := []rune(out)
		assert.Equal(t, strings.Repeat("あ", CharacterLimit), string(runes[:CharacterLimit]))
		assert.Contains(t, out, "_Response truncated at 25000 characters.")
	})

	t.Run("multi-byte under rune limit", func(t *testing.T) {
		// Over the limit in bytes but not in characters: unchanged.
		s := strings.Repeat("あ", CharacterLimit-1)
		assert.Equal(t, s, TruncateResponse(s))
	})
}
