// Package parser implements the row-oriented CSV state machine.
//
// The parser consumes one character at a time from a CharReader and assembles
// exactly one row per ReadRow call, enforcing strict quoting rules. It tracks
// four cursor counters (source line, row, column within the line, field
// within the row) so that a malformed character can be reported at its exact
// position.
package parser

import (
	"io"
	"unicode/utf8"
)

// CharReader is the character source the parser pulls from. ReadChar returns
// the next character of the input, io.EOF when no characters remain, or the
// underlying read error. The parser borrows the source and never closes it.
type CharReader interface {
	ReadChar() (rune, error)
}

// Config adjusts the two parsing policies the strict machine leaves open.
type Config struct {
	// KeepQuotedCarriageReturns preserves carriage returns as literal
	// content inside quoted fields. When false, a CR is swallowed in every
	// state, which normalizes CRLF line endings but also strips CRs from
	// quoted CRLF sequences.
	KeepQuotedCarriageReturns bool

	// EmitPartialRow returns the in-progress row when the input ends
	// without a trailing line terminator. When false, a dangling partial
	// row is discarded and ReadRow reports end of stream.
	EmitPartialRow bool
}

// Parser reads CSV rows from a character source. It owns its counters and
// field buffer exclusively and is not safe for concurrent use; use one Parser
// per stream.
type Parser struct {
	src CharReader
	cfg Config

	line  int // current source line, 1-indexed, persists across rows
	row   int // current row, 1-indexed, persists across rows
	col   int // column within the current line, reset per ReadRow
	field int // field within the current row, reset per ReadRow

	buf []byte // reusable field buffer, cleared (not reallocated) per field
	err error  // sticky outcome once the stream ends or fails
}

// New creates a Parser with the default strict configuration.
func New(src CharReader) *Parser {
	return NewWithConfig(src, Config{})
}

// NewWithConfig creates a Parser with the given policy configuration.
func NewWithConfig(src CharReader, cfg Config) *Parser {
	return &Parser{
		src:  src,
		cfg:  cfg,
		line: 1,
		row:  1,
	}
}

// Line returns the current source line number, 1-indexed. Line terminators
// inside quoted fields count.
func (p *Parser) Line() int { return p.line }

// Row returns the current row number, 1-indexed.
func (p *Parser) Row() int { return p.row }

// ReadRow reads exactly one row from the character source.
//
// It returns the row's fields on success (a blank line yields a single empty
// field), io.EOF when the input is exhausted, a *FormatError when the input
// violates CSV structure, or the source's read error. The returned slice is
// owned by the caller.
//
// An empty stream is not a valid CSV source: if the very first character of
// the input is already end-of-input, ReadRow fails with a FormatError at
// line 1, column 1. After io.EOF or any error, every subsequent call returns
// the same outcome.
func (p *Parser) ReadRow() ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}

	p.col = 1
	p.field = 1
	p.buf = p.buf[:0]

	var values []string
	st := stateInitial

	for {
		c, err := p.src.ReadChar()
		if err != nil {
			if err != io.EOF {
				p.err = err
				return nil, err
			}
			return p.endOfInput(st, values)
		}

		switch st {
		case stateInitial:
			switch c {
			case '\r':
				// swallowed: CRLF and bare CR normalize to LF
			case '\n':
				return p.emitRow(values), nil
			case ',':
				values = p.emitField(values)
			case '"':
				st = stateQuote
			default:
				p.buf = utf8.AppendRune(p.buf, c)
				st = stateTextData
			}

		case stateTextData:
			switch c {
			case '\r':
			case '\n':
				return p.emitRow(values), nil
			case ',':
				values = p.emitField(values)
				st = stateInitial
			case '"':
				p.err = p.violation(ErrBareQuote)
				return nil, p.err
			default:
				p.buf = utf8.AppendRune(p.buf, c)
			}

		case stateQuote:
			switch c {
			case '\r':
				if p.cfg.KeepQuotedCarriageReturns {
					p.buf = append(p.buf, '\r')
				}
			case '\n':
				// literal content, but still a source line boundary
				p.buf = append(p.buf, '\n')
				p.line++
			case '"':
				st = stateEscapeQuote
			default:
				p.buf = utf8.AppendRune(p.buf, c)
			}

		case stateEscapeQuote:
			// The previous quote either closed the field or escapes this one.
			switch c {
			case '\r':
			case '\n':
				return p.emitRow(values), nil
			case ',':
				values = p.emitField(values)
				st = stateInitial
			case '"':
				p.buf = append(p.buf, '"')
				st = stateInnerQuote
			default:
				p.err = p.violation(ErrQuote)
				return nil, p.err
			}

		case stateInnerQuote:
			// The escaped quote is already in the buffer; quoted content
			// resumes exactly as in stateQuote.
			switch c {
			case '\r':
				if p.cfg.KeepQuotedCarriageReturns {
					p.buf = append(p.buf, '\r')
				}
			case '\n':
				p.buf = append(p.buf, '\n')
				p.line++
				st = stateQuote
			case '"':
				st = stateEscapeQuote
			default:
				p.buf = utf8.AppendRune(p.buf, c)
				st = stateQuote
			}
		}

		p.col++
	}
}

// endOfInput resolves an io.EOF from the source against the current row
// progress. The outcome is sticky.
func (p *Parser) endOfInput(st state, values []string) ([]string, error) {
	// Nothing was ever read from the stream: an empty file is a format
	// violation, not a zero-row source.
	if p.line == 1 && p.col == 1 {
		p.err = p.violation(ErrEmptyInput)
		return nil, p.err
	}

	if p.cfg.EmitPartialRow && (st != stateInitial || len(values) > 0 || len(p.buf) > 0) {
		values = p.emitField(values)
		p.row++
		p.err = io.EOF
		return values, nil
	}

	// An unterminated final row is discarded.
	p.err = io.EOF
	return nil, io.EOF
}

// emitField appends the buffered field text to the row and resets the buffer.
func (p *Parser) emitField(values []string) []string {
	values = append(values, string(p.buf))
	p.field++
	p.buf = p.buf[:0]
	return values
}

// emitRow closes the current field and returns the completed row.
func (p *Parser) emitRow(values []string) []string {
	values = p.emitField(values)
	p.line++
	p.row++
	return values
}

// violation captures all four counters at the offending character.
func (p *Parser) violation(err error) *FormatError {
	return &FormatError{
		Line:   p.line,
		Column: p.col,
		Row:    p.row,
		Field:  p.field,
		Err:    err,
	}
}
