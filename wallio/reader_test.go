package wallio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patchwall/gridgraph"
	"github.com/katalvlaran/patchwall/wallio"
)

// TestReadProblem_Valid covers accepted inputs.
func TestReadProblem_Valid(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  wallio.Problem
		free  int
		width int
	}{
		{
			name:  "Reference",
			in:    "3 10 3 2\n.**.**.***\n.*..*..*.*\n..**.*.***\n",
			want:  wallio.Problem{Height: 3, Width: 10, Double: 3, Simple: 2, Rows: []string{".**.**.***", ".*..*..*.*", "..**.*.***"}},
			free:  17,
			width: 10,
		},
		{
			name:  "HeaderOnSeveralLines",
			in:    "1 2\n3\n4\n**",
			want:  wallio.Problem{Height: 1, Width: 2, Double: 3, Simple: 4, Rows: []string{"**"}},
			free:  2,
			width: 2,
		},
		{
			name:  "BlankLinesAndSpaces",
			in:    "2 3 1 1\r\n\r\n* . *\r\n\n.*x\n",
			want:  wallio.Problem{Height: 2, Width: 3, Double: 1, Simple: 1, Rows: []string{"*.*", ".*x"}},
			free:  3,
			width: 3,
		},
		{
			name: "ZeroHeight",
			in:   "0 5 3 2\n",
			want: wallio.Problem{Height: 0, Width: 5, Double: 3, Simple: 2, Rows: []string{}},
		},
		{
			name: "ZeroWidth",
			in:   "2 0 3 2",
			want: wallio.Problem{Height: 2, Width: 0, Double: 3, Simple: 2},
		},
		{
			name:  "RowOnHeaderLine",
			in:    "1 2 3 2 **",
			want:  wallio.Problem{Height: 1, Width: 2, Double: 3, Simple: 2, Rows: []string{"**"}},
			free:  2,
			width: 2,
		},
		{
			name:  "FirstRowOnHeaderLine",
			in:    "2 2 1 1 * .\n.*\n",
			want:  wallio.Problem{Height: 2, Width: 2, Double: 1, Simple: 1, Rows: []string{"*.", ".*"}},
			free:  2,
			width: 2,
		},
		{
			name: "HugeHeightZeroWidth",
			in:   "4611686018427387904 0 1 1\n",
			want: wallio.Problem{Height: 4611686018427387904, Width: 0, Double: 1, Simple: 1},
		},
		{
			name:  "TrailingRowsIgnored",
			in:    "1 1 0 1\n*\nextra\n",
			want:  wallio.Problem{Height: 1, Width: 1, Double: 0, Simple: 1, Rows: []string{"*"}},
			free:  1,
			width: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := wallio.ReadProblem(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, *p)

			g, err := p.Grid(gridgraph.DefaultGridOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.free, g.TotalFree())
			assert.Equal(t, tc.width, g.Width)
		})
	}
}

// TestReadProblem_Errors covers rejected inputs.
func TestReadProblem_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", wallio.ErrTruncated},
		{"ShortHeader", "3 10 3", wallio.ErrMalformedHeader},
		{"HeaderWithoutPrices", "3 10\n", wallio.ErrMalformedHeader},
		{"NotANumber", "3 x 3 2", wallio.ErrMalformedHeader},
		{"MissingRows", "3 2 1 1\n**\n", wallio.ErrTruncated},
		{"HugeHeightMissingRows", "4611686018427387904 1 1 1\n*\n", wallio.ErrTruncated},
		{"ShortRow", "2 3 1 1\n***\n**\n", wallio.ErrInvalidProblem},
		{"LongRow", "1 2 1 1\n***\n", wallio.ErrInvalidProblem},
		{"NegativeHeight", "-1 2 1 1", wallio.ErrInvalidProblem},
		{"NegativePrice", "1 1 -3 1\n*\n", wallio.ErrInvalidProblem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wallio.ReadProblem(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("ReadProblem(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

// TestValidate_Messages checks that every failed constraint is reported.
func TestValidate_Messages(t *testing.T) {
	err := wallio.Validate(&wallio.Problem{Height: 2, Width: 2, Double: -1, Simple: 1, Rows: []string{"**", "*"}})
	require.ErrorIs(t, err, wallio.ErrInvalidProblem)
	assert.Contains(t, err.Error(), "Double failed gte=0")
	assert.Contains(t, err.Error(), "Rows[1] failed rowwidth=2")

	err = wallio.Validate(&wallio.Problem{Height: 2, Width: 2, Rows: []string{"**"}})
	require.ErrorIs(t, err, wallio.ErrInvalidProblem)
	assert.Contains(t, err.Error(), "rowcount=2")
}
