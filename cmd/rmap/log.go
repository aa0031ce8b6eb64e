package main

import (
	"log/slog"
	"os"

	"github.com/signadot/rpgmap/debug"
)

var theLog = debug.NewLogger(os.Stderr)

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Quiet {
		return debug.Discard
	}
	return theLog
}
