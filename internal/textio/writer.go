package textio

import (
	"fmt"
	"os"
	"path/filepath"
)

// FormatScore renders a score with the two-decimal precision used in
// result files.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// WriteScore persists the score to path as a two-decimal string followed by
// a newline. The write is atomic: a temporary file in the target directory
// is renamed into place, so no partial result is ever visible.
func WriteScore(path string, score float64) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".score-*")
	if err != nil {
		return fmt.Errorf("creating temp result file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := fmt.Fprintf(tmp, "%s\n", FormatScore(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing result file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publishing result: %w", err)
	}
	return nil
}
