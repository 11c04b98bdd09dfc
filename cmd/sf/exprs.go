package main

import (
	"bufio"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/eval"
	"github.com/symfold/symfold/ir"
)

// forEachExpr parses each argument as an expression, or, with no
// arguments, each non-blank line of standard input.
func forEachExpr(cc *cli.Context, args []string, fn func(n *ir.Node) error) error {
	if len(args) > 0 {
		for _, src := range args {
			n, err := eval.Parse(src)
			if err != nil {
				return err
			}
			if err := fn(n); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(cc.In)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		n, err := eval.Parse(src)
		if err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return sc.Err()
}
