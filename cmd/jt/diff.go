package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/jot-format/go-jot/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := loadArg(cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cc, args[1])
	if err != nil {
		return err
	}
	diffs := libdiff.Diff(from, to)
	if libdiff.Equal(diffs) {
		return nil
	}
	colors := libdiff.NoColors()
	if cfg.Color || outIsTerminal(cc) {
		colors = libdiff.NewColors()
	}
	if _, err := fmt.Fprintln(cc.Out, libdiff.Format(diffs, colors)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func outIsTerminal(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
