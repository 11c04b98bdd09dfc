package main

import (
	"github.com/scott-cotton/cli"
	"github.com/symfold/symfold/ir"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sf").
		WithSynopsis("sf [opts] command [opts] [exprs]").
		WithDescription("sf is a tool for rewriting symbolic arithmetic expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(&ViewConfig{MainConfig: cfg, View: cfg.Main}, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ReduceCommand(cfg),
			ExpandCommand(cfg),
			EqCommand(cfg),
			DumpCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [exprs]").
		WithDescription("parse expressions and render them without rewriting").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ReduceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReduceConfig{MainConfig: mainCfg, Env: map[string]*ir.Node{}}
	opts := []*cli.Opt{
		{
			Name:        "e",
			Description: "bind a symbol before reducing",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=expr)"),
		},
	}
	cmd := cli.NewCommand("reduce").
		WithAliases("r", "red").
		WithSynopsis("reduce [-e name=expr]... [exprs]").
		WithDescription("normalize expressions by greedy pairwise merging").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reduce(cfg, cc, args)
		})
	cfg.Reduce = cmd
	return cmd
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg, Env: map[string]*ir.Node{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "e",
		Description: "bind a symbol before expanding",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=expr)"),
	})
	cmd := cli.NewCommand("expand").
		WithAliases("x", "ex").
		WithSynopsis("expand [-r] [-e name=expr]... [exprs]").
		WithDescription("distribute products over sums and unroll integer powers").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func EqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eq").
		WithSynopsis("eq [-d] <expr> <expr>").
		WithDescription("test two expressions for reduced structural equality").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eq(cfg, cc, args)
		})
	cfg.Eq = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithSynopsis("dump [-r] [-j|-y] [exprs]").
		WithDescription("dump expression IR as an indented tree, JSON, or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}
