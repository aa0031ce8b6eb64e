// Package query summarizes the events of a map document and filters them
// with boolean expressions.
//
// Expressions use the expr language and see these variables for each
// event:
//
//	id, x, y, pages, commands int
//	name string
//	codes []int   distinct command codes in first use order
//
// and the function command(code) giving the display name of a command
// code, for example
//
//	any(codes, command(#) == "Show Text") && x < 10
package query
