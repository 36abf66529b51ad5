// Package bigraph builds the bipartite repair graph of a gridgraph.Grid.
//
// Left vertices are the color-0 repair cells, right vertices the color-1
// repair cells, both identified by their dense partition index. Each left
// vertex stores the ordered list of right vertices it is grid-adjacent to;
// right vertices carry no list of their own since every edge is stored
// exactly once, left→right.
//
//	grid            left (color 0)   right (color 1)
//	* *             L0 ──────────── R0
//	* .                 └────────── R1
//
// The graph is built once per solve and is read-only afterwards, so it is
// stored as flat slices indexed by vertex id (no pointer graph).
//
// Complexity:
//
//   - Build: O(W×H) time, O(V + E) memory, E ≤ 4·LeftSize.
package bigraph
