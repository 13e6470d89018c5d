// Package outwriter renders CLI output for bucket and event queries.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/awlabs/awmcp/internal/contract"
)

// writeWithFile opens the target output (stdout when path is empty), runs
// the writer function, and reports where the output landed. The report goes
// to stderr so piped stdout stays clean.
func writeWithFile(path string, fn func(io.Writer) error, doneMsg string) error {
	file, err := contract.SelectOutputFile(path)
	if err != nil {
		return fmt.Errorf("cannot open output file %s: %w", path, err)
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := fn(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "%s to %s\n", doneMsg, path)
	}
	return nil
}
