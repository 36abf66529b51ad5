package bigraph_test

import (
	"fmt"

	"github.com/katalvlaran/patchwall/bigraph"
	"github.com/katalvlaran/patchwall/gridgraph"
)

// ExampleBuild prints the left→right adjacency of a small L-shaped wall.
func ExampleBuild() {
	grid, _ := gridgraph.NewGrid([]string{
		"**",
		"*.",
	}, gridgraph.DefaultGridOptions())
	g := bigraph.Build(grid)

	for u, nbrs := range g.Adj {
		r, c := g.LeftCell(u)
		fmt.Printf("L%d (%d,%d) ->", u, r, c)
		for _, v := range nbrs {
			vr, vc := g.RightCell(v)
			fmt.Printf(" R%d (%d,%d)", v, vr, vc)
		}
		fmt.Println()
	}

	// Output:
	// L0 (0,0) -> R1 (1,0) R0 (0,1)
}
