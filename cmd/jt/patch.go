package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jot "github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var patchNode *ir.Node
	if cfg.String {
		patchNode, err = parse.ParseString(args[0])
		if err != nil {
			return fmt.Errorf("error decoding patch: %w", err)
		}
	} else {
		patchNode, err = loadArg(cc, args[0])
		if err != nil {
			return err
		}
	}
	for _, arg := range inputArgs(args[1:]) {
		y, err := loadArg(cc, arg)
		if err != nil {
			return err
		}
		res, err := jot.ApplyPatch(y, patchNode)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
