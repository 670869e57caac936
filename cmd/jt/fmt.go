package main

import (
	"github.com/scott-cotton/cli"
)

func jtFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		y, err := loadArg(cc, arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc, y); err != nil {
			return err
		}
	}
	return nil
}
