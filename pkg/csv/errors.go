package csv

import "github.com/parsekit/row-csv/internal/parser"

// FormatError reports a CSV structure violation at an exact position: source
// line, column within the line, row, and field within the row, all 1-indexed.
// Use errors.As to recover it and errors.Is to match the wrapped sentinel.
//
//	var fe *csv.FormatError
//	if errors.As(err, &fe) {
//	    fmt.Printf("bad byte at line %d, column %d\n", fe.Line, fe.Column)
//	}
type FormatError = parser.FormatError

// Sentinel errors wrapped by FormatError.
var (
	// ErrBareQuote indicates a quote inside an already-open unquoted field.
	ErrBareQuote = parser.ErrBareQuote

	// ErrQuote indicates a stray character after a field's closing quote.
	ErrQuote = parser.ErrQuote

	// ErrEmptyInput indicates a source with no characters at all.
	ErrEmptyInput = parser.ErrEmptyInput
)
