package wallio

import (
	"errors"

	"github.com/katalvlaran/patchwall/gridgraph"
	"github.com/katalvlaran/patchwall/patch"
)

// Sentinel errors for input parsing and report writing.
var (
	// ErrMalformedHeader indicates the header is not four integers.
	ErrMalformedHeader = errors.New("wallio: header must be four integers: H W DOUBLE SIMPLE")
	// ErrTruncated indicates the input ended before all rows were read.
	ErrTruncated = errors.New("wallio: unexpected end of input")
	// ErrInvalidProblem indicates a problem that fails validation.
	ErrInvalidProblem = errors.New("wallio: invalid problem")
	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("wallio: unknown report format")
)

// Format selects the report layout.
type Format string

const (
	// FormatText prints the rendered plan followed by a summary.
	FormatText Format = "text"
	// FormatYAML prints the whole result as YAML.
	FormatYAML Format = "yaml"
)

// Problem is one decoded wall repair problem.
type Problem struct {
	Height int      `validate:"gte=0"`
	Width  int      `validate:"gte=0"`
	Double int64    `validate:"gte=0"`
	Simple int64    `validate:"gte=0"`
	Rows   []string `validate:"dive,required"`
}

// Prices returns the patch prices of the problem.
func (p *Problem) Prices() patch.Prices {
	return patch.Prices{Double: p.Double, Simple: p.Simple}
}

// Grid decodes the rows into a grid model.
func (p *Problem) Grid(opts gridgraph.GridOptions) (*gridgraph.Grid, error) {
	if p.Width == 0 {
		// H rows of nothing: the degenerate empty field
		return gridgraph.NewGrid(nil, opts)
	}
	return gridgraph.NewGrid(p.Rows, opts)
}
