package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent conversion failures.
// Every one of them aborts the current run.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Scan Errors.

	// ErrUnidentifiableLine indicates a line matched no pattern the active state expected.
	ErrUnidentifiableLine = errors.New("unidentifiable line")

	// ErrMalformedInput indicates end of input was reached before a
	// blank-line run or keyword threshold was met.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIOFailure indicates an artifact could not be opened, read or written.
	ErrIOFailure = errors.New("i/o failure")

	// ErrTokenization indicates the tokenizer rejected a paragraph,
	// e.g. because it produced no sentences.
	ErrTokenization = errors.New("tokenization failure")
)

// ScanError annotates a domain error with the position that caused it.
// Line is 1-based and relative to the text being scanned.
type ScanError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Line is the 1-based line number, or 0 when unknown.
	Line int

	// Text is the offending line, if any.
	Text string

	// State names the scanner state that failed.
	State string
}

// NewScanError creates a ScanError for the given kind and position.
func NewScanError(kind error, state string, line int, text string) *ScanError {
	return &ScanError{Kind: kind, Line: line, Text: text, State: state}
}

// Error implements error.
func (e *ScanError) Error() string {
	msg := e.Kind.Error()
	if e.State != "" {
		msg = e.State + ": " + msg
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	return msg
}

// Unwrap returns the sentinel kind so errors.Is matches it.
func (e *ScanError) Unwrap() error {
	return e.Kind
}
