package feeder

import (
	"fmt"
	"io"
	"os"
)

// WriteOutput writes the reply to path (overwriting), or to w followed by
// a newline when no path is given.
func WriteOutput(w io.Writer, text, path string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
