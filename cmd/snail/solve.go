package main

import (
	"fmt"
	"io"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/reduce"
	"github.com/tplews98/snailfish/search"

	"github.com/scott-cotton/cli"
)

type pairOutput struct {
	Magnitude int          `json:"magnitude" yaml:"magnitude"`
	I         int          `json:"i" yaml:"i"`
	J         int          `json:"j" yaml:"j"`
	Sum       string       `json:"sum,omitempty" yaml:"sum,omitempty"`
	Additions int          `json:"additions" yaml:"additions"`
	Stats     reduce.Stats `json:"stats" yaml:"stats"`
}

type solveOutput struct {
	Numbers      int          `json:"numbers" yaml:"numbers"`
	Sum          string       `json:"sum" yaml:"sum"`
	SumMagnitude int          `json:"sumMagnitude" yaml:"sumMagnitude"`
	SumStats     reduce.Stats `json:"sumStats" yaml:"sumStats"`
	Max          pairOutput   `json:"max" yaml:"max"`
}

func toPairOutput(r search.Result) pairOutput {
	res := pairOutput{
		Magnitude: r.Magnitude,
		I:         r.I,
		J:         r.J,
		Additions: r.Additions,
		Stats:     r.Stats,
	}
	if r.Sum != nil {
		res.Sum = encode.MustString(r.Sum)
	}
	return res
}

func toSolveOutput(r search.Report) solveOutput {
	return solveOutput{
		Numbers:      r.Numbers,
		Sum:          encode.MustString(r.Sum),
		SumMagnitude: r.SumMagnitude,
		SumStats:     r.SumStats,
		Max:          toPairOutput(r.Max),
	}
}

func solve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	rep, err := search.Solve(nums, searchOpts(cfg.Workers)...)
	if err != nil {
		return err
	}
	theLog.Debug("solved", "numbers", rep.Numbers, "additions", rep.Max.Additions+rep.Numbers-1)
	f := cfg.format()
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, toSolveOutput(rep))
	}
	return writeSolveText(cc.Out, rep)
}

func writeSolveText(w io.Writer, rep search.Report) error {
	if _, err := fmt.Fprintf(w, "Part 1: Magnitude of final number = %d\n", rep.SumMagnitude); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Part 2: Maximum magnitude of two nums summed = %d\n", rep.Max.Magnitude)
	return err
}

func writeMarshaled(w io.Writer, marshal func(any) ([]byte, error), v any) error {
	d, err := marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}
