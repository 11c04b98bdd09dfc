package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/eval"
	"github.com/symfold/symfold/ir"
	"github.com/symfold/symfold/rewrite"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq takes exactly two expressions", cli.ErrUsage)
	}
	x, err := eval.Parse(args[0])
	if err != nil {
		return err
	}
	y, err := eval.Parse(args[1])
	if err != nil {
		return err
	}
	rx, ry := rewrite.Reduce(x), rewrite.Reduce(y)
	ok := ir.Eq(rx, ry)
	fmt.Fprintln(cc.Out, ok)
	if ok || !cfg.D {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(rx), encode.MustString(ry), false)
	fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}
