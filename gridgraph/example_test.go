// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/patchwall/gridgraph"
)

// ExampleNewGrid shows checkerboard colors and per-color partition indices.
func ExampleNewGrid() {
	g, _ := gridgraph.NewGrid([]string{
		"**.",
		".**",
	}, gridgraph.DefaultGridOptions())

	for _, row := range g.Cells {
		for _, cell := range row {
			if !cell.Repair {
				continue
			}
			fmt.Printf("(%d,%d) color=%d index=%d\n", cell.Row, cell.Col, cell.Color(), cell.Index)
		}
	}
	fmt.Println("color0:", g.CountColor0, "color1:", g.CountColor1)

	// Output:
	// (0,0) color=0 index=0
	// (0,1) color=1 index=0
	// (1,1) color=0 index=1
	// (1,2) color=1 index=1
	// color0: 2 color1: 2
}

// ExampleGrid_Regions demonstrates how to find damaged regions.
func ExampleGrid_Regions() {
	g, _ := gridgraph.NewGrid([]string{
		"**..*",
		"*...*",
	}, gridgraph.DefaultGridOptions())

	for i, region := range g.Regions() {
		fmt.Printf("region %d:", i)
		for _, idx := range region {
			r, c := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", r, c)
		}
		fmt.Println()
	}

	// Output:
	// region 0: (0,0) (1,0) (0,1)
	// region 1: (0,4) (1,4)
}
