package main

import (
	"io"
	"os"

	"github.com/signadot/rpgmap"
	"github.com/signadot/rpgmap/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Quiet bool `cli:"name=q aliases=quiet desc='do not report repaired input'"`

	Main *cli.Command
}

func (cfg *MainConfig) convertOpts() []rpgmap.ConvertOpt {
	return []rpgmap.ConvertOpt{rpgmap.ConvertLogger(cfg.logger())}
}

// colors reports whether output to w should be colored: always with
// -color, otherwise when w is a terminal and -color was not given.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) viewOpts(w io.Writer) []rpgmap.ConvertOpt {
	res := cfg.convertOpts()
	if cfg.colors(w) {
		res = append(res, rpgmap.ConvertColors(encode.NewColors()))
	}
	return res
}

type ToYAMLConfig struct {
	*MainConfig
	Prefix string `cli:"name=prefix desc='prefix of the output file name' default=resultat_"`
	Dir    string `cli:"name=dir desc='output directory (default: the directory of the program)'"`

	Patch      []byte
	MergePatch []byte

	ToYAML *cli.Command
}

func (cfg *ToYAMLConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	cfg.Patch = d
	return nil, nil
}

func (cfg *ToYAMLConfig) mergePatchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	cfg.MergePatch = d
	return nil, nil
}

func (cfg *ToYAMLConfig) patchOpts() []rpgmap.ConvertOpt {
	res := cfg.convertOpts()
	if cfg.Patch != nil {
		res = append(res, rpgmap.ConvertPatch(cfg.Patch))
	}
	if cfg.MergePatch != nil {
		res = append(res, rpgmap.ConvertMergePatch(cfg.MergePatch))
	}
	return res
}

type ToJSONConfig struct {
	*MainConfig
	ToJSON *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='expression selecting events'"`
	List  *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

type CheckConfig struct {
	*MainConfig
	YAML  bool `cli:"name=yaml desc='also print the intermediate document'"`
	Check *cli.Command
}
