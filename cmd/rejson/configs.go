package main

import (
	"fmt"
	"io"
	"os"

	"github.com/houzhenggang/rejson/encode"
	"github.com/houzhenggang/rejson/ir"
	"github.com/houzhenggang/rejson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Compact  bool `cli:"name=compact aliases=c desc='no whitespace in output'"`
	MaxDepth int  `cli:"name=maxDepth desc='max container nesting'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if !cfg.Compact {
		res = append(res, encode.Pretty())
	}
	return append(res, cfg.colorOpts(w)...)
}

func (cfg *MainConfig) colorOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func writeWith(w io.Writer, node *ir.Node, opts []encode.EncodeOption) error {
	s := encode.String(node, opts...)
	_, err := io.WriteString(w, s+"\n")
	return err
}

// readArg reads and parses one input argument, "-" meaning stdin.
func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	d, err := readBytes(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func readBytes(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	return writeWith(w, node, cfg.encOpts(w))
}

type FmtConfig struct {
	*MainConfig
	Pretty  bool   `cli:"name=pretty aliases=p desc='two-space indent layout'"`
	Indent  string `cli:"name=indent desc='indent string'"`
	Newline string `cli:"name=newline desc='newline string'"`
	Space   string `cli:"name=space desc='string after object colons'"`

	Fmt *cli.Command
}

// fmt is compact unless a layout flag says otherwise.
func (cfg *FmtConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Pretty {
		res = append(res, encode.Pretty())
	}
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Newline != "" {
		res = append(res, encode.Newline(cfg.Newline))
	}
	if cfg.Space != "" {
		res = append(res, encode.Space(cfg.Space))
	}
	return append(res, cfg.colorOpts(w)...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	FromYAML bool `cli:"name=I desc='input is yaml'"`
	ToYAML   bool `cli:"name=O desc='output is yaml'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='report only the exit status'"`

	Diff *cli.Command
}
