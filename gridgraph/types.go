// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/patchwall.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidMarker indicates the repair and intact markers are equal or whitespace.
	ErrInvalidMarker = errors.New("gridgraph: repair and intact markers must be distinct non-space runes")
)

// Default cell markers, as used by the classic input format.
const (
	DefaultRepairMarker = '*'
	DefaultIntactMarker = '.'
)

// NoIndex is the partition index of a cell that does not require repair.
const NoIndex = -1

// Cell is a single wall cell. It is immutable once the Grid is built.
type Cell struct {
	Row, Col int  // Coordinates within the grid
	Repair   bool // Cell must be covered by a patch
	// Index is the dense partition index of the cell within its color class,
	// or NoIndex when the cell does not require repair.
	Index int
}

// Color returns the checkerboard color (0 or 1) of the cell: (Row+Col) mod 2.
// Two grid-adjacent cells always have different colors.
func (c Cell) Color() int {
	return (c.Row + c.Col) & 1
}

// GridOptions contains tunable parameters for grid decoding.
type GridOptions struct {
	// RepairMarker is the rune that marks a cell requiring repair.
	// Every other rune decodes as an intact cell.
	RepairMarker rune
	// IntactMarker is the rune used when rendering intact cells.
	IntactMarker rune
}

// DefaultGridOptions returns GridOptions with RepairMarker='*' and IntactMarker='.'.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		RepairMarker: DefaultRepairMarker,
		IntactMarker: DefaultIntactMarker,
	}
}

// Grid is the coded representation of a wall. It is immutable once built.
// Cells[r][c] holds the cell at row r, column c.
// CountColor0 and CountColor1 count repair cells per checkerboard color;
// partition indices are dense in [0,CountColorX) within each color.
type Grid struct {
	Width, Height int
	Cells         [][]Cell
	CountColor0   int
	CountColor1   int
	opts          GridOptions
}
