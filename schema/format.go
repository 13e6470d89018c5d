package schema

// ResponseFormat selects between the two tool output renderings.
type ResponseFormat string

// Supported response formats.
const (
	MarkdownFormat ResponseFormat = "markdown" // human-readable markdown
	JSONFormat     ResponseFormat = "json"     // machine-readable JSON
)

// ParseResponseFormat maps a raw parameter value to a ResponseFormat.
// Anything other than an explicit "json" falls back to markdown, which is
// the default when the caller omits the field entirely.
func ParseResponseFormat(s string) ResponseFormat {
	if s == string(JSONFormat) {
		return JSONFormat
	}
	return MarkdownFormat
}
