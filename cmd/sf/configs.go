package main

import (
	"io"
	"os"

	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/ir"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	X     bool `cli:"name=x aliases=star desc='render products with explicit *'"`
	Color bool `cli:"name=color desc='render with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeExplicitProducts(cfg.X),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ReduceConfig struct {
	*MainConfig
	Env map[string]*ir.Node

	Reduce *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Env map[string]*ir.Node

	R bool `cli:"name=r desc='reduce the expanded result'"`

	Expand *cli.Command
}

type EqConfig struct {
	*MainConfig

	D bool `cli:"name=d desc='show a rendering diff when not equal'"`

	Eq *cli.Command
}

type DumpConfig struct {
	*MainConfig

	R bool `cli:"name=r desc='reduce before dumping'"`
	J bool `cli:"name=j aliases=json desc='dump as JSON IR'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as YAML IR'"`

	Dump *cli.Command
}
