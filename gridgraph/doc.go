// Package gridgraph treats a rectangular wall of cells as a checkerboard
// graph, the first stage of the patch planner.
//
// What:
//
//   - Grid decodes rows of marker runes ('*' = needs repair by default).
//   - Every repair cell gets a color (Row+Col) mod 2 and a dense partition
//     index within its color, assigned in row-major order.
//   - Neighbors are visited in the fixed order down, up, right, left.
//   - Regions reports 4-connected components of repair cells.
//
// Why:
//
//   - Grid adjacency always flips the checkerboard color, so the repair
//     cells form a bipartite graph: color 0 on the left, color 1 on the right.
//   - Dense per-color indices let later stages store the graph, the matching
//     and the visited markers in flat slices.
//
// Complexity:
//
//   - NewGrid: O(W×H), Memory: O(W×H).
//   - Regions: O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.RepairMarker: rune that marks a repair cell.
//   - GridOptions.IntactMarker: rune used when rendering intact cells.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidMarker: markers are equal or whitespace.
//
// An empty input (no rows) is not an error: it yields a Grid with no cells.
package gridgraph
