package bigraph

import (
	"github.com/katalvlaran/patchwall/gridgraph"
)

// Build derives the bipartite repair graph of grid.
//
// Steps:
//  1. Allocate Adj with one (possibly empty) list per color-0 repair cell.
//  2. Walk cells in row-major order, recording the coordinates of every
//     repair cell under its partition index.
//  3. For each color-0 repair cell, examine its neighbors down, up, right,
//     left; every in-bounds repair neighbor (necessarily color 1) is
//     appended to the cell's adjacency list.
//
// A nil grid yields an empty graph.
// Complexity: O(W×H) time, O(V + E) memory.
func Build(grid *gridgraph.Grid) *Graph {
	if grid == nil {
		return &Graph{}
	}
	g := &Graph{
		LeftSize:   grid.CountColor0,
		RightSize:  grid.CountColor1,
		Adj:        make([][]int, grid.CountColor0),
		leftCells:  make([][2]int, grid.CountColor0),
		rightCells: make([][2]int, grid.CountColor1),
	}
	offsets := grid.NeighborOffsets()

	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			cell := grid.Cell(r, c)
			if !cell.Repair {
				continue
			}
			if cell.Color() != 0 {
				g.rightCells[cell.Index] = [2]int{r, c}
				continue
			}
			g.leftCells[cell.Index] = [2]int{r, c}

			nbrs := make([]int, 0, len(offsets))
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if !grid.IsRepair(nr, nc) {
					continue
				}
				nbrs = append(nbrs, grid.Cell(nr, nc).Index)
			}
			g.Adj[cell.Index] = nbrs
		}
	}

	return g
}
