package awclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a failed API call so callers can branch on the
// failure mode while still rendering a message.
type ErrorKind int

// Error kinds, from transport failures through decode mismatches.
const (
	KindTimeout    ErrorKind = iota // request exceeded the client timeout; retryable
	KindConnection                  // server unreachable (refused, DNS)
	KindNetwork                     // any other transport failure
	KindStatus                      // non-2xx HTTP status from the server
	KindDecode                      // 2xx body did not match the expected shape
)

// APIError is the classified error returned by every Client operation.
type APIError struct {
	Kind       ErrorKind
	StatusCode int    // set for KindStatus
	Body       string // raw response body for KindStatus, best effort
	message    string
}

func (e *APIError) Error() string {
	return e.message
}

// newStatusError maps a non-success HTTP status to a tailored message,
// always echoing the response body for diagnosis.
func newStatusError(code int, body string) *APIError {
	e := &APIError{Kind: KindStatus, StatusCode: code, Body: body}
	switch code {
	case 404:
		e.message = fmt.Sprintf("Resource not found. Please check the bucket ID. Details: %s", body)
	case 400:
		e.message = fmt.Sprintf("Bad request. Please check your parameters. Details: %s", body)
	case 500:
		e.message = fmt.Sprintf("ActivityWatch server error: %s", body)
	default:
		e.message = fmt.Sprintf("API request failed with status %d: %s", code, body)
	}
	return e
}

func newDecodeError(err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		message: fmt.Sprintf("Failed to parse API response: %v", err),
	}
}

// classifyTransportError converts a failed round trip into an APIError with
// a clear message. Timeouts are checked before dial failures because a slow
// dial surfaces as both.
func classifyTransportError(err error) *APIError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{
			Kind:    KindTimeout,
			message: "Request timed out. Please try again.",
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &APIError{
			Kind:    KindConnection,
			message: "Failed to connect to ActivityWatch. Is aw-server running?",
		}
	}

	return &APIError{
		Kind:    KindNetwork,
		message: fmt.Sprintf("Network error: %v", err),
	}
}
