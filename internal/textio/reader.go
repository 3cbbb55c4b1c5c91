// Package textio handles the file boundary of a comparison run: reading
// input documents and writing the formatted score.
package textio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound reports that an input path did not resolve to a readable file.
var ErrNotFound = errors.New("file not found")

// ReadDocument returns the full UTF-8 content of the file at path with
// leading and trailing whitespace removed.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
