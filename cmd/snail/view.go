package main

import (
	"fmt"

	"github.com/tplews98/snailfish"
	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/reduce"

	"github.com/scott-cotton/cli"
)

type magOutput struct {
	Number    int  `json:"number" yaml:"number"`
	Magnitude int  `json:"magnitude" yaml:"magnitude"`
	Stable    bool `json:"stable" yaml:"stable"`
}

func mag(cfg *MagConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mag.Parse(cc, args)
	if err != nil {
		return err
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	f := cfg.format()
	if !f.IsText() {
		res := make([]magOutput, len(nums))
		for i, n := range nums {
			res[i] = magOutput{Number: i + 1, Magnitude: snailfish.Magnitude(n), Stable: reduce.IsStable(n)}
		}
		return writeMarshaled(cc.Out, f.Marshal, res)
	}
	for _, n := range nums {
		if _, err := fmt.Fprintln(cc.Out, snailfish.Magnitude(n)); err != nil {
			return err
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	if f := cfg.format(); !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, viewAll(nums))
	}
	encOpts := cfg.encOpts(cc.Out)
	unstable := 0
	for i, n := range nums {
		if err := encode.Encode(n, cc.Out, encOpts...); err != nil {
			return fmt.Errorf("error encoding number %d: %w", i+1, err)
		}
		if !reduce.IsStable(n) {
			unstable++
		}
	}
	theLog.Debug("viewed", "numbers", len(nums), "unreduced", unstable)
	return nil
}

type viewOutput struct {
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"text" yaml:"text"`
	Depth  int    `json:"depth" yaml:"depth"`
	Stable bool   `json:"stable" yaml:"stable"`
}

func viewAll(nums []*ir.Number) []viewOutput {
	res := make([]viewOutput, len(nums))
	for i, n := range nums {
		res[i] = viewOutput{
			Number: i + 1,
			Text:   encode.MustString(n),
			Depth:  n.MaxDepth(),
			Stable: reduce.IsStable(n),
		}
	}
	return res
}
