package main

import (
	"github.com/scott-cotton/cli"
	"github.com/sandrolain/golists/pkg/types"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "timeout",
		Description: "evaluation timeout, such as 5s",
		Type:        cli.NamedFuncOpt(cfg.timeoutOpt, "(duration)"),
	})

	return cli.NewCommandAt(&cfg.Main, "golists").
		WithSynopsis("golists [opts] command [opts]").
		WithDescription("golists evaluates list expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return golistsMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			InspectCommand(cfg),
			CheckCommand(cfg),
			FuncsCommand(cfg),
			ReplCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]*types.Node{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind name to a yaml value",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})

	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [ -e name2=val2 ]...] [exprs]").
		WithDescription("evaluate expressions given as arguments, or one per line from stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]*types.Node) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg, Prefix: "[", Suffix: "]"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Inspect, "inspect").
		WithAliases("i", "in").
		WithSynopsis("inspect [-p prefix] [-s suffix] [files]").
		WithDescription("show the list structure of yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-v] files").
		WithDescription("run scenario files and report mismatches").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FuncsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FuncsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Funcs, "funcs").
		WithAliases("f").
		WithSynopsis("funcs").
		WithDescription("list available functions").
		WithRun(func(cc *cli.Context, args []string) error {
			return funcs(cfg, cc, args)
		})
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithSynopsis("repl [-history file]").
		WithDescription("evaluate expressions interactively").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}
