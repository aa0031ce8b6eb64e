package main

import (
	"github.com/signadot/rpgmap"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	doc, err := loadMap(cfg.MainConfig, cc, fileArg(args))
	if err != nil {
		return err
	}
	return rpgmap.WriteYAML(doc, cc.Out, cfg.viewOpts(cc.Out)...)
}
