// Package matching computes maximum matchings on the bipartite repair graph
// built by package bigraph.
//
// Two engines are offered:
//
//   - Kuhn
//
//   - Method: greedy seed, then one augmenting-path search per unseeded
//     left vertex, with a per-attempt visited set.
//
//   - Time:   O(V · E).
//
//   - Memory: O(V) for the matching, visited set and search stack.
//
//   - HopcroftKarp
//
//   - Method: BFS layering from all free left vertices + blocking
//     augmentation along layered paths (Dinic on a unit network).
//
//   - Time:   O(E · √V).
//
//   - Memory: O(V) for layers, iterators and the search stack.
//
// Both searches run on an explicit stack of (vertex, next-neighbor) frames,
// so call-stack depth stays constant on very large walls.
//
// # Result
//
// A *Matching stores MatchRight[v], the left vertex paired to right vertex v
// (or Unmatched). Size() counts matched right vertices. The maximum size is a
// property of the graph: both engines always agree on it, even when they pick
// different pairs.
//
// # Errors
//
//	ErrGraphNil         - the graph pointer is nil.
//	ErrOptionViolation  - an invalid Option was supplied.
//	ErrInvalidMatching  - Verify found a non-edge or a vertex matched twice.
//	context.Canceled / context.DeadlineExceeded - if the context passed via
//	WithContext is canceled.
package matching
