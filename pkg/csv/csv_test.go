package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "simple rows",
			input: "a,b,c\nd,e,f\n",
			want:  [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name:  "quoting",
			input: "\"a,b\",\"c\"\"d\"\n",
			want:  [][]string{{"a,b", "c\"d"}},
		},
		{
			name:  "blank line",
			input: "\n",
			want:  [][]string{{""}},
		},
		{
			name:  "dangling row dropped",
			input: "a\nb",
			want:  [][]string{{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, rows)
		})
	}
}

func TestParseReader(t *testing.T) {
	rows, err := ParseReader(strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"x"}, {"y"}}, rows)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("a,b\n\"c\nd\",e\n"))

	err := Validate("a\"b\n")
	require.ErrorIs(t, err, ErrBareQuote)

	err = Validate("")
	require.ErrorIs(t, err, ErrEmptyInput)

	err = Validate("\"a\"x\n")
	require.ErrorIs(t, err, ErrQuote)
}
