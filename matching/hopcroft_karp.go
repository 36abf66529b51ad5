package matching

import (
	"math"

	"github.com/katalvlaran/patchwall/bigraph"
)

// HopcroftKarp computes a maximum matching of g by repeated phases of
// BFS layering and blocking augmentation, the unit-capacity form of Dinic.
//
// Steps per phase:
//  1. BFS from every free left vertex; dist[u] is the alternating-path
//     layer of left vertex u. Stop if no free right vertex is reachable.
//  2. For every free left vertex, search a layered augmenting path with a
//     per-vertex edge iterator; dead-end vertices are removed from the
//     layer graph (dist = ∞) so each edge is scanned once per phase.
//
// The Seeded flags of the result stay false; SeedSize is 0.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or the context error if canceled between phases.
// Complexity: O(E·√V) time, O(V) memory.
func HopcroftKarp(g *bigraph.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	hk := &hopcroftKarp{
		g:      g,
		m:      newMatching(g.LeftSize, g.RightSize),
		matchL: make([]int, g.LeftSize),
		dist:   make([]int, g.LeftSize),
		iter:   make([]int, g.LeftSize),
		queue:  make([]int, 0, g.LeftSize),
	}
	for u := range hk.matchL {
		hk.matchL[u] = Unmatched
	}

	for {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if !hk.layer() {
			break
		}
		for u := range hk.iter {
			hk.iter[u] = 0
		}
		for u := 0; u < g.LeftSize; u++ {
			if hk.matchL[u] == Unmatched && hk.augment(u) {
				o.OnAugment(u)
			}
		}
	}

	return hk.m, nil
}

const unreachable = math.MaxInt

// hopcroftKarp holds the per-run arena of the layered search.
type hopcroftKarp struct {
	g      *bigraph.Graph
	m      *Matching
	matchL []int
	dist   []int
	iter   []int
	queue  []int
	stack  []int
}

// layer runs the BFS of one phase and reports whether any free right
// vertex is reachable along an alternating path.
func (hk *hopcroftKarp) layer() bool {
	hk.queue = hk.queue[:0]
	for u := range hk.dist {
		if hk.matchL[u] == Unmatched {
			hk.dist[u] = 0
			hk.queue = append(hk.queue, u)
		} else {
			hk.dist[u] = unreachable
		}
	}

	found := false
	for qi := 0; qi < len(hk.queue); qi++ {
		u := hk.queue[qi]
		for _, v := range hk.g.Adj[u] {
			w := hk.m.MatchRight[v]
			if w == Unmatched {
				found = true
			} else if hk.dist[w] == unreachable {
				hk.dist[w] = hk.dist[u] + 1
				hk.queue = append(hk.queue, w)
			}
		}
	}
	return found
}

// augment searches a layered augmenting path from the free left vertex root.
// iter[u] is not advanced past an edge while the child reached through it
// is on the stack, so on success Adj[s][iter[s]] is the edge each frame used.
func (hk *hopcroftKarp) augment(root int) bool {
	adj := hk.g.Adj
	match := hk.m.MatchRight
	hk.stack = append(hk.stack[:0], root)

	for len(hk.stack) > 0 {
		u := hk.stack[len(hk.stack)-1]
		if hk.iter[u] == len(adj[u]) {
			// dead end for the rest of this phase
			hk.dist[u] = unreachable
			hk.stack = hk.stack[:len(hk.stack)-1]
			continue
		}
		v := adj[u][hk.iter[u]]
		w := match[v]
		if w == Unmatched {
			for _, s := range hk.stack {
				sv := adj[s][hk.iter[s]]
				match[sv] = s
				hk.matchL[s] = sv
			}
			return true
		}
		if hk.dist[w] != unreachable && hk.dist[w] == hk.dist[u]+1 {
			hk.stack = append(hk.stack, w)
			continue
		}
		hk.iter[u]++
	}

	return false
}
