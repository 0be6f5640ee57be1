// Package chario provides the character source consumed by the row parser:
// a sequential, one-rune-at-a-time reader over an underlying byte stream.
//
// The reader yields exactly one decoded character per ReadChar call and
// signals end of input with io.EOF. Input in a non-UTF-8 charset can be
// transcoded on the fly with WithEncoding.
package chario

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Reader produces single characters from an underlying io.Reader.
//
// It is not safe for concurrent use. The zero value is not usable; construct
// with New or Open.
type Reader struct {
	br     *bufio.Reader
	src    io.Reader
	closed bool
}

// Option configures a Reader.
type Option func(*config)

type config struct {
	enc encoding.Encoding
}

// WithEncoding transcodes the input from the given charset to UTF-8 before
// characters are produced. By default the input is assumed to be UTF-8.
//
// Example:
//
//	r, err := chario.Open("latin1.csv", chario.WithEncoding(charmap.Windows1252))
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) {
		c.enc = enc
	}
}

// New creates a Reader producing characters from src.
//
// The Reader borrows src; Close closes src only when it implements io.Closer.
func New(src io.Reader, opts ...Option) *Reader {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	decoded := src
	if cfg.enc != nil {
		decoded = transform.NewReader(src, cfg.enc.NewDecoder())
	}

	return &Reader{
		br:  bufio.NewReader(decoded),
		src: src,
	}
}

// Open opens the named file and returns a Reader over its contents.
// The caller must Close the returned Reader to release the file.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return New(f, opts...), nil
}

// ReadChar returns the next character from the input.
// It returns io.EOF when no characters remain and the underlying read error
// otherwise.
func (r *Reader) ReadChar() (rune, error) {
	c, _, err := r.br.ReadRune()
	if err != nil {
		return 0, err
	}
	return c, nil
}

// Close releases the underlying source when it implements io.Closer.
// Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
