package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/go-jot/eval"
)

func jtEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range inputArgs(args[1:]) {
		y, err := loadArg(cc, arg)
		if err != nil {
			return err
		}
		res, err := eval.Eval(y, src)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
