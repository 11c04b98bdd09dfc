package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/eval"
	"github.com/symfold/symfold/ir"
)

func envOptTypeFunc(env map[string]*ir.Node) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]*ir.Node, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=expr, got %q", cli.ErrUsage, a)
	}
	n, err := eval.Parse(val)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	env[name] = n
	return nil
}
