package parse

import (
	"log/slog"

	"github.com/signadot/rpgmap/ir"
)

type parseOpts struct {
	log       *slog.Logger
	positions map[*ir.Node]Pos
}

type ParseOption func(*parseOpts)

// ParseLogger sets where warnings about degraded input go.
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

// ParsePositions records the input position of every node produced.
func ParsePositions(m map[*ir.Node]Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
