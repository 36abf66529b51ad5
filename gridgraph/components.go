package gridgraph

// Regions finds all contiguous damaged regions: 4-connected components of
// repair cells. Returns a slice of regions; each region is a slice of
// row-major cell indices in BFS discovery order. Regions are ordered by
// their first cell in row-major order.
//
// Patches never span two regions, so each region is an independent
// subproblem of the repair plan.
//
// To convert an index back to (r,c), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var regions [][]int

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if !g.Cells[r][c].Repair {
				continue // intact
			}
			i0 := g.Index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect region
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.IsRepair(vr, vc) {
						continue
					}
					vi := g.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}
