package main

import (
	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/eval"
	"github.com/symfold/symfold/ir"
	"github.com/symfold/symfold/rewrite"
)

func reduce(cfg *ReduceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reduce.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return forEachExpr(cc, args, func(n *ir.Node) error {
		n = eval.Bind(n, cfg.Env)
		return encode.Encode(rewrite.Reduce(n), cc.Out, opts...)
	})
}
