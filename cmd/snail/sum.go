package main

import (
	"fmt"
	"io"

	"github.com/tplews98/snailfish"
	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/reduce"
	"github.com/tplews98/snailfish/search"

	"github.com/scott-cotton/cli"
)

type sumOutput struct {
	Sum       string       `json:"sum" yaml:"sum"`
	Magnitude int          `json:"magnitude" yaml:"magnitude"`
	Stats     reduce.Stats `json:"stats" yaml:"stats"`
}

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	total, st, err := search.Sum(nums)
	if err != nil {
		return err
	}
	m := snailfish.Magnitude(total)
	f := cfg.format()
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, sumOutput{
			Sum:       encode.MustString(total),
			Magnitude: m,
			Stats:     st,
		})
	}
	if err := encode.Encode(total, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding sum: %w", err)
	}
	_, err = fmt.Fprintf(cc.Out, "magnitude: %d\n", m)
	return err
}

func maxPair(cfg *MaxConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Max.Parse(cc, args)
	if err != nil {
		return err
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	best, err := search.MaxPair(nums, searchOpts(cfg.Workers)...)
	if err != nil {
		return err
	}
	f := cfg.format()
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, toPairOutput(best))
	}
	if best.Sum == nil {
		return fmt.Errorf("%w: max needs at least two numbers, got %d", cli.ErrUsage, len(nums))
	}
	return writePairText(cc.Out, best, cfg.encOpts(cc.Out))
}

// writePairText numbers inputs from 1 in the order they were read, across
// all input files.
func writePairText(w io.Writer, best search.Result, encOpts []encode.EncodeOption) error {
	if _, err := fmt.Fprintf(w, "%d: number %d + number %d\n", best.Magnitude, best.I+1, best.J+1); err != nil {
		return err
	}
	if err := encode.Encode(best.Sum, w, encOpts...); err != nil {
		return fmt.Errorf("error encoding sum: %w", err)
	}
	return nil
}
