package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/rpgmap"

	"github.com/scott-cotton/cli"
)

const defaultPrefix = "resultat_"

// outputPath places the base name of out, with prefix, in dir. An empty
// dir means the directory holding the program.
func outputPath(dir, prefix, out string) string {
	if dir == "" {
		dir = programDir()
	}
	return filepath.Join(dir, prefix+filepath.Base(out))
}

func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Dir(os.Args[0])
	}
	return filepath.Dir(exe)
}

// convertErr wraps a conversion failure of in. The stack of an
// internal error goes to w.
func convertErr(w io.Writer, in string, err error) error {
	var ie *rpgmap.InternalError
	if errors.As(err, &ie) {
		fmt.Fprintf(w, "%s", ie.Stack)
	}
	return fmt.Errorf("error converting %s: %w", in, err)
}

func toYAML(cfg *ToYAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToYAML.Parse(cc, args)
	if err != nil {
		cfg.ToYAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: to-yaml requires <input.json> <output.yml>, got %v", cli.ErrUsage, args)
	}
	in := args[0]
	d, err := readInput(cc, in)
	if err != nil {
		return err
	}
	opts := cfg.patchOpts()
	buf := &bytes.Buffer{}
	err = rpgmap.Convert(func() error {
		return rpgmap.ToYAML(d, buf, opts...)
	})
	if err != nil {
		return convertErr(os.Stderr, in, err)
	}
	out := outputPath(cfg.Dir, cfg.Prefix, args[1])
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Successfully converted %s to %s\n", in, out)
	return nil
}

func toJSON(cfg *ToJSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToJSON.Parse(cc, args)
	if err != nil {
		cfg.ToJSON.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: to-json requires <input.yml> <output.json>, got %v", cli.ErrUsage, args)
	}
	in, out := args[0], args[1]
	d, err := readInput(cc, in)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	err = rpgmap.Convert(func() error {
		return rpgmap.ToJSON(d, buf, cfg.convertOpts()...)
	})
	if err != nil {
		return convertErr(os.Stderr, in, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Successfully converted %s to %s\n", in, out)
	return nil
}
