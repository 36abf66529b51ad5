// Package patchwall finds the cheapest way to patch a damaged wall.
//
// 🧱 What is patchwall?
//
//	A small, zero-surprise toolkit that brings together:
//		• Grid model: checkerboard coloring & dense per-color indices
//		• Bipartite repair graph: left→right adjacency in flat slices
//		• Maximum matching: greedy seed + Kuhn, or Hopcroft–Karp
//		• Pricing: double vs simple patches, with the simple-only short-circuit
//		• Plans: where every patch goes, as text or YAML
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/: wall decoding, colors, partition indices, damaged regions
//	bigraph/  : bipartite repair graph builder
//	matching/ : Kuhn and Hopcroft–Karp maximum matching, verification
//	patch/    : cost evaluation, Solve pipeline, patch plans
//	wallio/   : input parsing/validation, price and report writers
//	config/   : YAML + environment configuration
//	logger/   : zap logger construction
//
// Quick ASCII example:
//
//	.**.      .<>.
//	.*..  →   .#..
//
// one double patch and one simple patch.
//
// The patchwall command (cmd/patchwall) wraps the pipeline:
//
//	echo "1 2 3 2
//	**" | patchwall solve
//	3
package patchwall
