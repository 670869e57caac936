package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range inputArgs(args[1:]) {
		y, err := loadArg(cc, arg)
		if err != nil {
			return err
		}
		res, err := y.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, path, err)
		}
		if err := writeNode(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
