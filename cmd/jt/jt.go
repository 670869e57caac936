package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

func jtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
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
	return err
}

// loadArg parses one document from a file path, or from cc.In when the
// path is "-".
func loadArg(cc *cli.Context, file string) (*ir.Node, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	y, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}

// inputArgs returns the document arguments, defaulting to stdin.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeNode(cfg *MainConfig, cc *cli.Context, y *ir.Node) error {
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err := cc.Out.Write([]byte("\n"))
	return err
}
