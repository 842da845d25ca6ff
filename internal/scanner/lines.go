package scanner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ReadLines reads r into lines with their terminators removed.
// Both "\n" and "\r\n" endings are accepted.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w: %w", domain.ErrIOFailure, err)
	}
	return lines, nil
}

// WriteLines writes each line followed by "\n".
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing lines: %w: %w", domain.ErrIOFailure, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing lines: %w: %w", domain.ErrIOFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing lines: %w: %w", domain.ErrIOFailure, err)
	}
	return nil
}

// IsBlank reports whether line held nothing but its terminator.
// Lines of spaces are not blank.
func IsBlank(line string) bool {
	return line == "" || line == "\r"
}
