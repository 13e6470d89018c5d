// Package awclient implements a read-only HTTP client for the ActivityWatch
// REST API. Transport failures, non-success statuses, and decode mismatches
// all surface as classified *APIError values.
package awclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/awlabs/awmcp/schema"
)

// DefaultTimeout bounds the full request/response round trip. It is fixed
// at construction; tool callers cannot override it per call.
const DefaultTimeout = 30 * time.Second

// Client queries an ActivityWatch server. It holds no mutable state beyond
// the configuration set at construction, so a single instance is safe to
// share across concurrent tool invocations.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client for the given base URL, e.g.
// "http://localhost:5600/api/0". A trailing slash is stripped. A
// non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout, Transport: tr},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListBuckets returns all buckets keyed by bucket ID.
func (c *Client) ListBuckets(ctx context.Context) (map[string]schema.Bucket, error) {
	var buckets map[string]schema.Bucket
	if err := c.get(ctx, fmt.Sprintf("%s/buckets/", c.baseURL), &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// GetBucket returns a single bucket by ID.
func (c *Client) GetBucket(ctx context.Context, bucketID string) (schema.Bucket, error) {
	var bucket schema.Bucket
	if err := c.get(ctx, fmt.Sprintf("%s/buckets/%s", c.baseURL, bucketID), &bucket); err != nil {
		return schema.Bucket{}, err
	}
	return bucket, nil
}

// GetEvents returns events from a bucket in server order (typically newest
// first). A nil limit means unset; a supplied limit is passed through
// verbatim, including zero. Empty start/end mean unset. Filters are passed
// through as-is for the server to validate.
func (c *Client) GetEvents(ctx context.Context, bucketID string, limit *int, start, end string) ([]schema.Event, error) {
	url := fmt.Sprintf("%s/buckets/%s/events", c.baseURL, bucketID)

	var params []string
	if limit != nil {
		params = append(params, "limit="+strconv.Itoa(*limit))
	}
	if start != "" {
		params = append(params, "start="+start)
	}
	if end != "" {
		params = append(params, "end="+end)
	}
	if len(params) > 0 {
		url = url + "?" + strings.Join(params, "&")
	}

	var events []schema.Event
	if err := c.get(ctx, url, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventCount returns the number of events in a bucket, optionally
// bounded by verbatim start/end filters.
func (c *Client) GetEventCount(ctx context.Context, bucketID string, start, end string) (int64, error) {
	url := fmt.Sprintf("%s/buckets/%s/events/count", c.baseURL, bucketID)

	var params []string
	if start != "" {
		params = append(params, "start="+start)
	}
	if end != "" {
		params = append(params, "end="+end)
	}
	if len(params) > 0 {
		url = url + "?" + strings.Join(params, "&")
	}

	var count int64
	if err := c.get(ctx, url, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// get performs a GET and applies the uniform response protocol: classify
// transport failures, map non-2xx statuses with the body echoed, and treat
// a 2xx body that does not decode as a contract mismatch.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &APIError{Kind: KindNetwork, message: fmt.Sprintf("Network error: %v", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		// Best effort: an unreadable body becomes an empty string.
		body, _ := io.ReadAll(resp.Body)
		return newStatusError(resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newDecodeError(err)
	}
	return nil
}
