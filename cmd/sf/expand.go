package main

import (
	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/eval"
	"github.com/symfold/symfold/ir"
	"github.com/symfold/symfold/rewrite"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return forEachExpr(cc, args, func(n *ir.Node) error {
		n = rewrite.Expand(eval.Bind(n, cfg.Env))
		if cfg.R {
			n = rewrite.Reduce(n)
		}
		return encode.Encode(n, cc.Out, opts...)
	})
}
