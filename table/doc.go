// Package table encodes the layered tile grid of a map to and from the
// text block of a Table record:
//
//	init 2 1 1
//	z = 0
//	5 6
//
// The header gives width, height and layer count. Each layer starts
// with a "z = n" marker followed by one line per row.
package table
