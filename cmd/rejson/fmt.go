package main

import (
	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeWith(cc.Out, node, cfg.encOpts(cc.Out)); err != nil {
			return err
		}
	}
	return nil
}
