package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

func rmapMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: unexpected failure: %v\n%s", r, debug.Stack())
			err = cli.ExitCodeErr(1)
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	if err != nil && !isExitCode(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeErr(1)
	}
	return err
}

func isExitCode(err error) bool {
	var ec cli.ExitCodeErr
	return errors.As(err, &ec)
}
