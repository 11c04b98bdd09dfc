package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/ir"
	"github.com/symfold/symfold/rewrite"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return forEachExpr(cc, args, func(n *ir.Node) error {
		if cfg.R {
			n = rewrite.Reduce(n)
		}
		switch {
		case cfg.J:
			d, err := json.MarshalIndent(n, "", "  ")
			if err != nil {
				return fmt.Errorf("internal error: %w", err)
			}
			_, err = fmt.Fprintf(cc.Out, "%s\n", d)
			return err
		case cfg.Y:
			d, err := yaml.Marshal(ir.ToAny(n))
			if err != nil {
				return fmt.Errorf("internal error: %w", err)
			}
			_, err = cc.Out.Write(d)
			return err
		}
		return encode.Dump(n, cc.Out, opts...)
	})
}
