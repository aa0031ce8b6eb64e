package main

import (
	"fmt"

	"github.com/signadot/rpgmap/query"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	f, err := query.Compile(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := loadMap(cfg.MainConfig, cc, fileArg(args))
	if err != nil {
		return err
	}
	sums, err := f.Select(query.Summarize(doc))
	if err != nil {
		return err
	}
	for _, s := range sums {
		if _, err := fmt.Fprintln(cc.Out, s.String()); err != nil {
			return err
		}
	}
	return nil
}
