// Package gridgraph decodes a rectangular wall of marker runes into a
// checkerboard-colored grid model:
//
//   - every cell is either a repair cell or an intact cell
//   - repair cells receive a dense partition index within their color class
//   - 4-connectivity in the fixed order down, up, right, left
//   - damaged regions (connected components of repair cells)
package gridgraph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// neighborOffsets lists (dRow, dCol) in the order down, up, right, left.
// The order only affects tie-breaking in later matching phases.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NewGrid builds a Grid from rows of marker runes.
//
// Cells are visited in row-major order; each repair cell receives the next
// unused partition index of its own color, so color 0 holds indices
// 0..CountColor0-1 and color 1 holds 0..CountColor1-1.
//
// No rows (or rows of zero width) yield an empty Grid with Width=Height=0
// when there are no rows, and zero repair cells in any case.
// Returns ErrNonRectangular if any row length differs from the first one,
// ErrInvalidMarker if the options carry unusable markers.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string, opts GridOptions) (*Grid, error) {
	if opts.RepairMarker == opts.IntactMarker || unicode.IsSpace(opts.RepairMarker) || unicode.IsSpace(opts.IntactMarker) {
		return nil, ErrInvalidMarker
	}
	g := &Grid{Height: len(rows), opts: opts}
	if g.Height == 0 {
		return g, nil
	}
	g.Width = utf8.RuneCountInString(rows[0])
	for _, row := range rows {
		if utf8.RuneCountInString(row) != g.Width {
			return nil, ErrNonRectangular
		}
	}

	g.Cells = make([][]Cell, g.Height)
	for r, row := range rows {
		g.Cells[r] = make([]Cell, 0, g.Width)
		c := 0
		for _, ch := range row {
			cell := Cell{Row: r, Col: c, Index: NoIndex}
			if ch == opts.RepairMarker {
				cell.Repair = true
				if cell.Color() == 0 {
					cell.Index = g.CountColor0
					g.CountColor0++
				} else {
					cell.Index = g.CountColor1
					g.CountColor1++
				}
			}
			g.Cells[r] = append(g.Cells[r], cell)
			c++
		}
	}

	return g, nil
}

// TotalFree returns the number of cells that require repair.
func (g *Grid) TotalFree() int {
	return g.CountColor0 + g.CountColor1
}

// Options returns the options the grid was decoded with.
func (g *Grid) Options() GridOptions {
	return g.opts
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Height && c >= 0 && c < g.Width
}

// Cell returns the cell at (r,c). The caller must check InBounds first.
func (g *Grid) Cell(r, c int) Cell {
	return g.Cells[r][c]
}

// IsRepair reports whether (r,c) is in bounds and requires repair.
func (g *Grid) IsRepair(r, c int) bool {
	return g.InBounds(r, c) && g.Cells[r][c].Repair
}

// NeighborOffsets returns the (dRow, dCol) offsets in the fixed order
// down, up, right, left.
func (g *Grid) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// Index maps (r,c) to a row-major index: r*Width + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.Width + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.Width, idx % g.Width
}

// String renders the grid with one line per row, using the configured
// repair and intact markers.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Repair {
				sb.WriteRune(g.opts.RepairMarker)
			} else {
				sb.WriteRune(g.opts.IntactMarker)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
