package csv

import "io"

// Scanner provides a bufio.Scanner-style pull loop over CSV rows. It wraps a
// Reader and folds the io.EOF terminator into the loop condition.
//
// Example:
//
//	sc := csv.NewScanner(file)
//	for sc.Scan() {
//	    fmt.Println(sc.Row())
//	}
//	if err := sc.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	r   *Reader
	row []string
	err error
}

// NewScanner creates a Scanner reading CSV rows from r.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerWithOptions(r, DefaultOptions())
}

// NewScannerWithOptions creates a Scanner with the given options.
func NewScannerWithOptions(r io.Reader, opts Options) *Scanner {
	return &Scanner{r: NewReaderWithOptions(r, opts)}
}

// Scan advances to the next row. It returns false at end of input or on
// error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	row, err := s.r.ReadRow()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.row = row
	return true
}

// Row returns the most recently scanned row. It is owned by the caller and
// remains valid across subsequent Scan calls.
func (s *Scanner) Row() []string {
	return s.row
}

// Err returns the first error encountered while scanning, or nil if the
// input was exhausted cleanly.
func (s *Scanner) Err() error {
	return s.err
}
