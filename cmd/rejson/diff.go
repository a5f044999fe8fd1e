package main

import (
	"fmt"
	"io"

	"github.com/houzhenggang/rejson/encode"
	"github.com/houzhenggang/rejson/ir"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		return nil
	}
	if !cfg.Quiet {
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(
			encode.String(a, encode.Pretty()),
			encode.String(b, encode.Pretty()),
			true)
		if _, err := io.WriteString(cc.Out, diffCfg.DiffPrettyText(diffs)+"\n"); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
