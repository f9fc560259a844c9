package main

import (
	"fmt"
	"time"

	"github.com/tplews98/snailfish/search"

	"github.com/scott-cotton/cli"
)

type benchOutput struct {
	Runs    int           `json:"runs" yaml:"runs"`
	Workers int           `json:"workers" yaml:"workers"`
	Numbers int           `json:"numbers" yaml:"numbers"`
	Min     time.Duration `json:"min" yaml:"min"`
	Mean    time.Duration `json:"mean" yaml:"mean"`
	Max     time.Duration `json:"max" yaml:"max"`
}

func bench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Runs < 1 {
		return fmt.Errorf("%w: -n must be positive, got %d", cli.ErrUsage, cfg.Runs)
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	res := benchOutput{Runs: cfg.Runs, Workers: cfg.Workers, Numbers: len(nums)}
	var total time.Duration
	for i := range cfg.Runs {
		start := time.Now()
		if _, err := search.Solve(nums, searchOpts(cfg.Workers)...); err != nil {
			return err
		}
		d := time.Since(start)
		theLog.Debug("bench run", "run", i, "elapsed", d)
		total += d
		if i == 0 || d < res.Min {
			res.Min = d
		}
		res.Max = max(res.Max, d)
	}
	res.Mean = total / time.Duration(cfg.Runs)
	f := cfg.format()
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, res)
	}
	_, err = fmt.Fprintf(cc.Out, "%d runs of %d numbers with %d workers: min %s mean %s max %s\n",
		res.Runs, res.Numbers, res.Workers, res.Min, res.Mean, res.Max)
	return err
}
