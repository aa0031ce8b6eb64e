package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "rmap").
		WithSynopsis("rmap [opts] command [opts]").
		WithDescription("rmap converts map assets between JSON and object-tagged YAML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rmapMain(cfg, cc, args)
		}).
		WithSubs(
			ToYAMLCommand(cfg),
			ToJSONCommand(cfg),
			ViewCommand(cfg),
			ListCommand(cfg),
			ShowCommand(cfg),
			CheckCommand(cfg))
}

func ToYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToYAMLConfig{MainConfig: mainCfg, Prefix: defaultPrefix}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "patch",
		Description: "RFC 6902 JSON patch applied before conversion",
		Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
	}, &cli.Opt{
		Name:        "merge-patch",
		Description: "RFC 7386 JSON merge patch applied before conversion, after -patch",
		Type:        cli.NamedFuncOpt(cfg.mergePatchOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.ToYAML, "to-yaml").
		WithAliases("to_yaml", "y").
		WithSynopsis("to-yaml [opts] <input.json> <output.yml>").
		WithDescription("convert a JSON map to an object-tagged YAML map").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
}

func ToJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToJSONConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ToJSON, "to-json").
		WithAliases("to_json", "j").
		WithSynopsis("to-json <input.yml> <output.json>").
		WithDescription("convert an object-tagged YAML map to JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [file]").
		WithDescription("print the object-tagged YAML form of a map, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr] [file]").
		WithDescription("list the events of a map, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show <event-id> [file]").
		WithDescription("show the pages and commands of an event").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] <input.json>").
		WithDescription("check that a JSON map survives conversion to YAML and back").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
