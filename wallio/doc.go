// Package wallio reads wall repair problems and writes their answers.
//
// Input format:
//
//	H W DOUBLE SIMPLE
//	row 1
//	...
//	row H
//
// The header holds four non-negative integers, possibly spread over several
// lines. Each following non-blank line is one row of exactly W cells.
// Whitespace inside or between rows separates cells and is never a cell. A
// '*' marks a cell needing repair; every other rune marks an intact cell.
// When W is 0 no row lines are read.
//
// Output is the minimum price followed by a newline. WriteReport adds a
// text or YAML report with the patch plan.
package wallio
