package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by FormatError. They identify which structural rule
// the input violated.
var (
	// ErrBareQuote indicates a quote appeared inside an already-open
	// unquoted field.
	ErrBareQuote = errors.New("bare \" in non-quoted-field")

	// ErrQuote indicates a character other than a comma, quote, or line
	// terminator followed a field's closing quote.
	ErrQuote = errors.New("unexpected character after closing \"")

	// ErrEmptyInput indicates the stream ended before a single character
	// could be read. An empty file is not a valid zero-row CSV source.
	ErrEmptyInput = errors.New("empty input")
)

// FormatError reports a CSV structure violation at an exact position.
// Line and Column locate the offending character in the source text; Row and
// Field locate it in the logical CSV structure. All four are 1-indexed.
//
// A FormatError is fatal for the stream: the parser that produced it must not
// be read from again.
type FormatError struct {
	Line   int
	Column int
	Row    int
	Field  int
	Err    error
}

// Error returns a diagnostic carrying all four position counters.
func (e *FormatError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d (row %d, field %d): %v",
		e.Line, e.Column, e.Row, e.Field, e.Err)
}

// Unwrap returns the underlying sentinel error for errors.Is.
func (e *FormatError) Unwrap() error {
	return e.Err
}
