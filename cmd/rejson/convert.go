package main

import (
	"fmt"

	"github.com/houzhenggang/rejson/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := convertArg(cfg, arg)
		if err != nil {
			return err
		}
		if cfg.ToYAML {
			d, err := yaml.Marshal(ir.ToGo(node))
			if err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, arg string) (*ir.Node, error) {
	if !cfg.FromYAML {
		return readArg(cfg.MainConfig, arg)
	}
	d, err := readBytes(arg)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	node, err := ir.FromGo(v)
	if err != nil {
		return nil, fmt.Errorf("error converting %s: %w", arg, err)
	}
	return node, nil
}
