package main

import (
	"fmt"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/eval"
	"github.com/tplews98/snailfish/ir"

	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval needs an expression", cli.ErrUsage)
	}
	code := args[0]
	var nums []*ir.Number
	if len(args) > 1 {
		nums, err = readNumbers(cfg.MainConfig, cc, args[1:])
		if err != nil {
			return err
		}
	}
	res, err := eval.Eval(code, nums)
	if err != nil {
		return err
	}
	f := cfg.format()
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, toMarshalable(res))
	}
	encOpts := cfg.encOpts(cc.Out)
	switch x := res.(type) {
	case *ir.Number:
		return encode.Encode(x, cc.Out, encOpts...)
	case []*ir.Number:
		for _, n := range x {
			if err := encode.Encode(n, cc.Out, encOpts...); err != nil {
				return err
			}
		}
		return nil
	}
	_, err = fmt.Fprintln(cc.Out, res)
	return err
}

// toMarshalable replaces numbers in v by their text.
func toMarshalable(v any) any {
	switch x := v.(type) {
	case *ir.Number:
		return encode.MustString(x)
	case []*ir.Number:
		res := make([]string, len(x))
		for i, n := range x {
			res[i] = encode.MustString(n)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = toMarshalable(e)
		}
		return res
	}
	return v
}
