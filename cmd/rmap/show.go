package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/rpgmap/query"

	"github.com/scott-cotton/cli"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: show requires an event id", cli.ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad event id %q", cli.ErrUsage, args[0])
	}
	doc, err := loadMap(cfg.MainConfig, cc, fileArg(args[1:]))
	if err != nil {
		return err
	}
	ev := query.Find(doc, id)
	if ev == nil {
		return fmt.Errorf("no event with id %d", id)
	}
	return query.Describe(cc.Out, ev)
}
