package bigraph

// Graph is a bipartite graph stored one-directionally (left → right).
//
//   - LeftSize, RightSize: vertex counts of each side.
//   - Adj[u]: right neighbors of left vertex u, in down, up, right, left order.
//   - leftCells[u], rightCells[v]: grid coordinates (row, col) of each vertex.
type Graph struct {
	LeftSize  int
	RightSize int
	Adj       [][]int

	leftCells  [][2]int
	rightCells [][2]int
}

// EdgeCount returns the total number of edges.
// Complexity: O(LeftSize).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.Adj {
		n += len(nbrs)
	}
	return n
}

// Degree returns the number of right neighbors of left vertex u.
func (g *Graph) Degree(u int) int {
	return len(g.Adj[u])
}

// HasEdge reports whether left vertex u is adjacent to right vertex v.
// Complexity: O(deg(u)), at most 4.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.LeftSize {
		return false
	}
	for _, to := range g.Adj[u] {
		if to == v {
			return true
		}
	}
	return false
}

// LeftCell returns the grid coordinates of left vertex u.
func (g *Graph) LeftCell(u int) (row, col int) {
	return g.leftCells[u][0], g.leftCells[u][1]
}

// RightCell returns the grid coordinates of right vertex v.
func (g *Graph) RightCell(v int) (row, col int) {
	return g.rightCells[v][0], g.rightCells[v][1]
}
