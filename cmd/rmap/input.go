package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/rpgmap"
	"github.com/signadot/rpgmap/format"
	"github.com/signadot/rpgmap/ir"

	"github.com/scott-cotton/cli"
)

// readInput reads path, or standard input for "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", rpgmap.ErrMissingInput, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// inputFormat picks the format of path by suffix, falling back to
// sniffing the content.
func inputFormat(path string, d []byte) format.Format {
	if f, err := format.FromPath(path); err == nil {
		return f
	}
	t := bytes.TrimSpace(d)
	if len(t) > 0 && (t[0] == '{' || t[0] == '[') {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

// loadMap reads a map in either format and returns its JSON layout.
func loadMap(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	if inputFormat(path, d).IsJSON() {
		return rpgmap.ReadJSON(d)
	}
	return rpgmap.ReadYAML(d, cfg.convertOpts()...)
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
