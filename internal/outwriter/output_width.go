package outwriter

import (
	"os"

	"golang.org/x/term"
)

// GetMaxTitleWidth calculates the maximum width for the event summary
// column based on terminal width, honoring an absolute override from
// flag/env.
func GetMaxTitleWidth(widthOverride int) int {
	termWidth := widthOverride

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the timestamp, duration, and label columns with
	// table borders and padding.
	const baseWidth = 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
