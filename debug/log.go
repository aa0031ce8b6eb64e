package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/rpgmap/ir"
)

// Log receives warnings about degraded conversions: zero-filled grids,
// literal move commands, skipped events.
var Log = NewLogger(os.Stderr)

// NewLogger returns a text logger which omits the time and the INFO
// level label.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// Discard is a logger which drops everything.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			d, err := ir.MarshalJSON(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
