package csv

import (
	"io"

	"github.com/parsekit/row-csv/internal/chario"
	"github.com/parsekit/row-csv/internal/parser"
)

// Reader reads CSV rows from an input stream, one row per ReadRow call.
//
// A Reader owns its position counters and field buffer exclusively and is not
// safe for concurrent use. Use one Reader per stream and serialize access
// externally if needed.
type Reader struct {
	src        *chario.Reader
	p          *parser.Parser
	ownsSource bool
	closed     bool
}

// NewReader creates a Reader over r with the default strict configuration.
// The Reader borrows r: closing the source remains the caller's
// responsibility.
func NewReader(r io.Reader) *Reader {
	return NewReaderWithOptions(r, DefaultOptions())
}

// NewReaderWithOptions creates a Reader over r with the given options.
func NewReaderWithOptions(r io.Reader, opts Options) *Reader {
	src := chario.New(r, charOptions(opts)...)
	return &Reader{
		src: src,
		p:   parser.NewWithConfig(src, parserConfig(opts)),
	}
}

// Open opens the named file for reading CSV rows. The returned Reader owns
// the file; Close releases it.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenWithOptions opens the named file with the given options.
func OpenWithOptions(path string, opts Options) (*Reader, error) {
	src, err := chario.Open(path, charOptions(opts)...)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src:        src,
		p:          parser.NewWithConfig(src, parserConfig(opts)),
		ownsSource: true,
	}, nil
}

func charOptions(opts Options) []chario.Option {
	if opts.Encoding == nil {
		return nil
	}
	return []chario.Option{chario.WithEncoding(opts.Encoding)}
}

func parserConfig(opts Options) parser.Config {
	return parser.Config{
		KeepQuotedCarriageReturns: opts.KeepQuotedCarriageReturns,
		EmitPartialRow:            opts.EmitPartialRow,
	}
}

// ReadRow reads exactly one row.
//
// It returns the row's fields on success (a blank line yields a single empty
// field), io.EOF when the input is exhausted, a *FormatError for malformed
// input, or the underlying read error. Errors are fatal for the stream: after
// anything but a successful row, further calls return the same outcome.
func (r *Reader) ReadRow() ([]string, error) {
	return r.p.ReadRow()
}

// ReadAll reads rows until end of input and returns them in source order.
// A format or read error discards previously read rows.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Line returns the current source line number, 1-indexed. Line terminators
// inside quoted fields count.
func (r *Reader) Line() int { return r.p.Line() }

// Row returns the current row number, 1-indexed.
func (r *Reader) Row() int { return r.p.Row() }

// Close releases the underlying file for Readers created by Open. For
// Readers created by NewReader it is a no-op: the source belongs to the
// caller. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed || !r.ownsSource {
		r.closed = true
		return nil
	}
	r.closed = true
	return r.src.Close()
}
