package matching

import (
	"github.com/katalvlaran/patchwall/bigraph"
)

// frame is one level of an augmenting search: a left vertex and the index
// of the next neighbor to try.
type frame struct {
	v    int
	next int
}

// kuhn encapsulates the mutable state of one Kuhn run. All slices are
// allocated once and indexed by dense vertex ids.
type kuhn struct {
	g       *bigraph.Graph
	m       *Matching
	visited []bool
	stack   []frame
}

// Kuhn computes a maximum matching of g.
//
// Steps:
//  1. Greedy seed (unless WithoutSeed): each left vertex, in index order,
//     takes the first neighbor not yet claimed by an earlier left vertex.
//  2. For every left vertex not seeded in step 1, reset the visited set and
//     run one augmenting search from it. Matches found by earlier attempts
//     are kept.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or the context error if the run is canceled between attempts.
// Complexity: O(V·E) time, O(V) memory.
func Kuhn(g *bigraph.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	k := &kuhn{
		g:       g,
		m:       newMatching(g.LeftSize, g.RightSize),
		visited: make([]bool, g.LeftSize),
		stack:   make([]frame, 0, 16),
	}
	if o.Seed {
		k.seed()
	}

	for u := 0; u < g.LeftSize; u++ {
		if k.m.Seeded[u] {
			continue
		}
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		for i := range k.visited {
			k.visited[i] = false
		}
		if k.augment(u) {
			o.OnAugment(u)
		}
	}

	return k.m, nil
}

// seed pairs each left vertex with its first unclaimed neighbor.
func (k *kuhn) seed() {
	for u, nbrs := range k.g.Adj {
		for _, to := range nbrs {
			if k.m.MatchRight[to] == Unmatched {
				k.m.MatchRight[to] = u
				k.m.Seeded[u] = true
				k.m.SeedSize++
				break
			}
		}
	}
}

// augment searches an augmenting path starting at left vertex root.
//
// It mirrors the recursive formulation exactly:
//
//	try(v): if visited[v] fail; visited[v] = true
//	        for to in Adj[v]:
//	            if to is free or try(owner(to)): owner(to) = v; succeed
//	        fail
//
// The top frame of the stack is the innermost call. A child frame is only
// pushed for an unvisited owner, since try on a visited vertex fails
// without side effects. On success every frame on the stack takes the
// neighbor it was exploring, which re-routes the whole path at once.
func (k *kuhn) augment(root int) bool {
	adj := k.g.Adj
	match := k.m.MatchRight

	k.visited[root] = true
	k.stack = append(k.stack[:0], frame{v: root})

	for len(k.stack) > 0 {
		top := &k.stack[len(k.stack)-1]
		if top.next == len(adj[top.v]) {
			// every neighbor failed: return false to the caller frame
			k.stack = k.stack[:len(k.stack)-1]
			continue
		}
		to := adj[top.v][top.next]
		top.next++

		if match[to] == Unmatched {
			for i := len(k.stack) - 1; i >= 0; i-- {
				f := k.stack[i]
				match[adj[f.v][f.next-1]] = f.v
			}
			return true
		}
		owner := match[to]
		if k.visited[owner] {
			continue
		}
		k.visited[owner] = true
		k.stack = append(k.stack, frame{v: owner})
	}

	return false
}
