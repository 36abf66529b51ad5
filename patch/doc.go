// Package patch plans the cheapest repair of a damaged wall.
//
// A wall is repaired with two kinds of patches:
//
//   - a double patch covers two grid-adjacent repair cells and costs Double;
//   - a simple patch covers one repair cell and costs Simple.
//
// Every repair cell is covered exactly once. With m double patches and F
// repair cells in total the price is
//
//	m·Double + (F − 2m)·Simple
//
// When 2·Simple ≤ Double a double patch never pays off, so Solve answers
// Simple·F directly and neither builds the repair graph nor runs a matching.
// Otherwise each double patch saves 2·Simple − Double > 0, so the price is
// minimal exactly when m is a maximum matching of the bipartite repair graph
// (see packages bigraph and matching).
//
// Solve can also produce a Plan: the layout of every patch on the wall,
// rendered as
//
//	<>  horizontal double patch
//	^v  vertical double patch (^ on top)
//	#   simple patch
//
// with intact cells printed using the grid's intact marker.
//
// # Errors
//
//	ErrGridNil          - the grid pointer is nil.
//	ErrNegativePrice    - a price is negative.
//	ErrUnknownStrategy  - the requested matching engine does not exist.
//	ErrEngineMismatch   - verification found engines disagreeing on the size.
//	ErrOptionViolation  - an invalid Option was supplied.
package patch
