package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "report format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "snail").
		WithSynopsis("snail [opts] command [opts]").
		WithDescription("snail does arithmetic on snailfish numbers, one per input line.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return snailMain(cfg, cc, args)
		}).
		WithSubs(
			SolveCommand(cfg),
			SumCommand(cfg),
			MaxCommand(cfg),
			ReduceCommand(cfg),
			MagCommand(cfg),
			ViewCommand(cfg),
			EvalCommand(cfg),
			BenchCommand(cfg))
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg, Workers: defaultWorkers()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Solve, "solve").
		WithAliases("s").
		WithSynopsis("solve [-w workers] [files]").
		WithDescription("magnitude of the sum of all numbers and the largest magnitude of a sum of two").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithSynopsis("sum [files]").
		WithDescription("add all numbers from first to last").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func MaxCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MaxConfig{MainConfig: mainCfg, Workers: defaultWorkers()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Max, "max").
		WithSynopsis("max [-w workers] [files]").
		WithDescription("find the two numbers whose sum has the largest magnitude").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return maxPair(cfg, cc, args)
		})
}

func ReduceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReduceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Reduce, "reduce").
		WithAliases("r").
		WithSynopsis("reduce [-trace [-diff]] [files]").
		WithDescription("reduce each number").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reduceNumbers(cfg, cc, args)
		})
}

func MagCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MagConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Mag, "mag").
		WithAliases("m").
		WithSynopsis("mag [files]").
		WithDescription("magnitude of each number").
		WithRun(func(cc *cli.Context, args []string) error {
			return mag(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("check and show numbers, in color pairs that would explode and literals that would split").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalExpr(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression over the input numbers.

The numbers are bound to n and + adds two numbers, so

  snail eval 'mag(n[0] + n[1])' input.txt

prints the magnitude of the sum of the first two lines. Functions are add,
mag, reduce, stable, depth, sum, parse and str.`

func BenchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BenchConfig{MainConfig: mainCfg, Workers: defaultWorkers(), Runs: 100}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bench, "bench").
		WithSynopsis("bench [-n runs] [-w workers] [files]").
		WithDescription("time repeated runs of solve").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bench(cfg, cc, args)
		})
}
