package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Duration label constants for event tables.
const (
	LongValue   = "Long"   // an hour or more
	MediumValue = "Medium" // five minutes to an hour
	ShortValue  = "Short"  // five seconds to five minutes
	BlipValue   = "Blip"   // under five seconds
)

// Color variables for console output.
var (
	LongColor   = color.New(color.FgMagenta, color.Bold) // sustained activity stands out
	MediumColor = color.New(color.FgYellow)
	ShortColor  = color.New(color.FgCyan)
	BlipColor   = color.New(color.FgWhite)
)

// GetPlainLabel returns a plain text label bucketing an event duration.
// This is the core logic used for JSON and table printing.
func GetPlainLabel(seconds float64) string {
	switch {
	case seconds >= 3600:
		return LongValue
	case seconds >= 300:
		return MediumValue
	case seconds >= 5:
		return ShortValue
	default:
		return BlipValue
	}
}

// GetColorLabel returns a colored duration label for console output.
func GetColorLabel(seconds float64) string {
	text := GetPlainLabel(seconds)

	switch text {
	case LongValue:
		return LongColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	case ShortValue:
		return ShortColor.Sprint(text)
	default: // "Blip"
		return BlipColor.Sprint(text)
	}
}

// SelectOutputFile returns the file handle for output, defaulting to stdout
// when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error to stderr and exits the program. Stdout is left
// untouched because it carries the MCP protocol when serving.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
