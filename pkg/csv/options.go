package csv

import "golang.org/x/text/encoding"

// Options configures CSV reading behavior. The zero value is the default
// strict configuration.
type Options struct {
	// Encoding transcodes the input from the given charset to UTF-8 before
	// parsing. Nil means the input is already UTF-8.
	//
	// Example:
	//
	//	opts := csv.DefaultOptions()
	//	opts.Encoding = charmap.Windows1252
	Encoding encoding.Encoding

	// KeepQuotedCarriageReturns preserves carriage returns as literal
	// content inside quoted fields. When false (the default), every CR in
	// the input is swallowed, which normalizes CRLF line endings but also
	// strips CRs from quoted CRLF sequences.
	KeepQuotedCarriageReturns bool

	// EmitPartialRow returns the in-progress row when the input ends
	// without a trailing line terminator. When false (the default), a
	// dangling partial row is silently discarded.
	EmitPartialRow bool
}

// DefaultOptions returns the default strict configuration: UTF-8 input,
// carriage returns swallowed, dangling final rows discarded.
func DefaultOptions() Options {
	return Options{
		Encoding:                  nil,
		KeepQuotedCarriageReturns: false,
		EmitPartialRow:            false,
	}
}
