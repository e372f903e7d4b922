// Package puzzle loads the two-block puzzle text and solves it end to end.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrStructure is returned when the puzzle text does not split into exactly a
// map block and a path line separated by one blank line.
var ErrStructure = errors.New("puzzle: malformed input structure")

// ErrTooLarge is returned when an input file exceeds the configured byte cap.
var ErrTooLarge = errors.New("puzzle: input too large")

// Split separates puzzle text into the map block and the path line.
//
// Leading spaces of the first map row are significant and kept; only trailing
// whitespace of the whole text is dropped.
//
// Postcondition: Returns non-empty mapText and pathText, or an error wrapping ErrStructure.
func Split(text string) (mapText, pathText string, err error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, " \t\n")

	parts := strings.Split(text, "\n\n")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected 2 blank-line separated parts, got %d", ErrStructure, len(parts))
	}
	if strings.TrimSpace(parts[0]) == "" {
		return "", "", fmt.Errorf("%w: empty map block", ErrStructure)
	}
	if strings.Contains(parts[1], "\n") {
		return "", "", fmt.Errorf("%w: path must be a single line", ErrStructure)
	}
	return parts[0], parts[1], nil
}

// LoadFile reads puzzle text from path. A positive maxBytes caps the file size.
//
// Postcondition: Returns the file contents, or an error wrapping ErrTooLarge
// or the underlying I/O error.
func LoadFile(path string, maxBytes int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening puzzle file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading puzzle file %s: %w", path, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, maxBytes)
	}
	return string(data), nil
}
