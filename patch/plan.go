package patch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/patchwall/bigraph"
	"github.com/katalvlaran/patchwall/gridgraph"
	"github.com/katalvlaran/patchwall/matching"
)

// ErrInvalidPlan is returned by Plan.Check for a layout that does not cover
// every repair cell exactly once.
var ErrInvalidPlan = errors.New("patch: invalid plan")

// Tile is the part of a patch that lies on one cell.
type Tile byte

const (
	TileIntact Tile = 0   // no patch
	TileSimple Tile = '#' // simple patch
	TileLeft   Tile = '<' // left half of a horizontal double patch
	TileRight  Tile = '>' // right half of a horizontal double patch
	TileTop    Tile = '^' // top half of a vertical double patch
	TileBottom Tile = 'v' // bottom half of a vertical double patch
)

// Patch is one placed patch: Kind is "double" or "simple", Cells holds its
// (row, col) cells in row-major order.
type Patch struct {
	Kind  string   `yaml:"kind"`
	Cells [][2]int `yaml:"cells,flow"`
}

// Plan is the layout of every patch on the wall; Tiles[r][c] is the tile
// on cell (r,c).
type Plan struct {
	Height, Width int
	Tiles         [][]Tile
	intact        rune
}

// newPlan returns a plan of intact tiles shaped like grid.
func newPlan(grid *gridgraph.Grid) *Plan {
	p := &Plan{
		Height: grid.Height,
		Width:  grid.Width,
		Tiles:  make([][]Tile, grid.Height),
		intact: grid.Options().IntactMarker,
	}
	for r := range p.Tiles {
		p.Tiles[r] = make([]Tile, grid.Width)
	}
	return p
}

// simplePlan covers every repair cell of grid with a simple patch.
func simplePlan(grid *gridgraph.Grid) *Plan {
	p := newPlan(grid)
	p.fillSimple(grid)
	return p
}

// matchedPlan places one double patch per matched pair and a simple patch
// on every remaining repair cell.
func matchedPlan(grid *gridgraph.Grid, g *bigraph.Graph, m *matching.Matching) *Plan {
	p := newPlan(grid)
	for _, pair := range m.Pairs() {
		ur, uc := g.LeftCell(pair[0])
		vr, vc := g.RightCell(pair[1])
		// order the two cells top-left first
		if vr < ur || vc < uc {
			ur, uc, vr, vc = vr, vc, ur, uc
		}
		if ur == vr {
			p.Tiles[ur][uc], p.Tiles[vr][vc] = TileLeft, TileRight
		} else {
			p.Tiles[ur][uc], p.Tiles[vr][vc] = TileTop, TileBottom
		}
	}
	p.fillSimple(grid)
	return p
}

// fillSimple puts a simple patch on every repair cell still uncovered.
func (p *Plan) fillSimple(grid *gridgraph.Grid) {
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			if grid.Cell(r, c).Repair && p.Tiles[r][c] == TileIntact {
				p.Tiles[r][c] = TileSimple
			}
		}
	}
}

// Counts returns the number of double and simple patches in the plan.
func (p *Plan) Counts() (doubles, simples int) {
	for _, row := range p.Tiles {
		for _, t := range row {
			switch t {
			case TileLeft, TileTop:
				doubles++
			case TileSimple:
				simples++
			}
		}
	}
	return doubles, simples
}

// Patches lists every patch in row-major order of its first cell.
func (p *Plan) Patches() []Patch {
	var out []Patch
	for r, row := range p.Tiles {
		for c, t := range row {
			switch t {
			case TileSimple:
				out = append(out, Patch{Kind: "simple", Cells: [][2]int{{r, c}}})
			case TileLeft:
				out = append(out, Patch{Kind: "double", Cells: [][2]int{{r, c}, {r, c + 1}}})
			case TileTop:
				out = append(out, Patch{Kind: "double", Cells: [][2]int{{r, c}, {r + 1, c}}})
			}
		}
	}
	return out
}

// Render draws the plan, one line per row.
func (p *Plan) Render() string {
	var sb strings.Builder
	sb.Grow(p.Height * (p.Width + 1))
	for _, row := range p.Tiles {
		for _, t := range row {
			if t == TileIntact {
				sb.WriteRune(p.intact)
			} else {
				sb.WriteByte(byte(t))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalYAML encodes the plan as its rendered rows plus the patch list.
func (p *Plan) MarshalYAML() (interface{}, error) {
	rows := strings.Split(strings.TrimSuffix(p.Render(), "\n"), "\n")
	if p.Height == 0 {
		rows = nil
	}
	return struct {
		Rows    []string `yaml:"rows"`
		Patches []Patch  `yaml:"patches"`
	}{rows, p.Patches()}, nil
}

// Check verifies that the plan covers exactly the repair cells of grid,
// each by one patch, and that every double patch is whole.
// Returns an error wrapping ErrInvalidPlan.
func (p *Plan) Check(grid *gridgraph.Grid) error {
	if p.Height != grid.Height || p.Width != grid.Width {
		return fmt.Errorf("%w: shape %dx%d, grid %dx%d", ErrInvalidPlan, p.Height, p.Width, grid.Height, grid.Width)
	}
	tile := func(r, c int) Tile {
		if !grid.InBounds(r, c) {
			return TileIntact
		}
		return p.Tiles[r][c]
	}
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			t := p.Tiles[r][c]
			if grid.Cell(r, c).Repair != (t != TileIntact) {
				return fmt.Errorf("%w: cell (%d,%d) coverage mismatch", ErrInvalidPlan, r, c)
			}
			var ok bool
			switch t {
			case TileIntact, TileSimple:
				ok = true
			case TileLeft:
				ok = tile(r, c+1) == TileRight
			case TileRight:
				ok = tile(r, c-1) == TileLeft
			case TileTop:
				ok = tile(r+1, c) == TileBottom
			case TileBottom:
				ok = tile(r-1, c) == TileTop
			}
			if !ok {
				return fmt.Errorf("%w: broken patch at (%d,%d)", ErrInvalidPlan, r, c)
			}
		}
	}
	return nil
}
