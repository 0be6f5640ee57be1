package parser

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/parsekit/row-csv/internal/chario"
)

// FuzzReadRow drives the state machine with arbitrary input to find panics
// and non-deterministic behavior.
// Run with: go test -fuzz=FuzzReadRow -fuzztime=30s ./internal/parser
func FuzzReadRow(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c",
		"a,b,c\n",
		"a,b\nc,d",
		"\"quoted\"\n",
		"\"with,comma\"\n",
		"\"with\"\"quote\"\n",
		"\"multi\nline\"\n",
		"a,\"b\",c\n",
		"\r\n",
		"a\r\nb\r\n",
		",,\n",
		"\"\"\n",
		"\"\"\"\"\n",
		"a\"b",
		"\"a\"b",
		"\"open",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		drain := func() ([][]string, error) {
			p := New(chario.New(strings.NewReader(input)))
			var rows [][]string
			for {
				row, err := p.ReadRow()
				if err == io.EOF {
					return rows, nil
				}
				if err != nil {
					return rows, err
				}
				rows = append(rows, row)
			}
		}

		// Never panic, and identical input always yields identical output.
		rows1, err1 := drain()
		rows2, err2 := drain()
		if !reflect.DeepEqual(rows1, rows2) {
			t.Fatalf("rows differ between runs: %q vs %q", rows1, rows2)
		}
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("errors differ between runs: %v vs %v", err1, err2)
		}
	})
}
