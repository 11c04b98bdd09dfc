package main

import (
	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return forEachExpr(cc, args, func(n *ir.Node) error {
		return encode.Encode(n, cc.Out, opts...)
	})
}
