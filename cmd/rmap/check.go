package main

import (
	"fmt"

	"github.com/signadot/rpgmap/roundtrip"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check requires one JSON file, got %v", cli.ErrUsage, args)
	}
	d, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	r, err := roundtrip.Check(d, roundtrip.Logger(cfg.logger()))
	if err != nil {
		return fmt.Errorf("error checking %s: %w", args[0], err)
	}
	if cfg.YAML {
		if _, err := cc.Out.Write(r.YAML); err != nil {
			return err
		}
	}
	if err := r.Print(cc.Out, cfg.colors(cc.Out)); err != nil {
		return err
	}
	if !r.Faithful {
		return cli.ExitCodeErr(1)
	}
	return nil
}
