package schema

import "fmt"

// TruncateResponse cuts a markdown response at CharacterLimit characters and
// appends a notice suggesting narrower filters. The cut counts runes, not
// bytes, so multi-byte content is never split mid-character. Responses at or
// under the limit are returned unchanged.
func TruncateResponse(response string) string {
	// Byte length bounds rune count, so most responses exit here.
	if len(response) <= CharacterLimit {
		return response
	}
	runes := []rune(response)
	if len(runes) <= CharacterLimit {
		return response
	}
	return fmt.Sprintf(
		"%s\n\n_Response truncated at %d characters. Use more specific filters to reduce results._",
		string(runes[:CharacterLimit]), CharacterLimit,
	)
}
