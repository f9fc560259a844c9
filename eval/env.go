package eval

import (
	"fmt"

	"github.com/tplews98/snailfish"
	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/parse"
	"github.com/tplews98/snailfish/reduce"
	"github.com/tplews98/snailfish/search"

	"github.com/expr-lang/expr"
)

type Env = map[string]any

// NewEnv returns an environment with nums bound to n.
func NewEnv(nums []*ir.Number) Env {
	return Env{
		"n":   nums,
		"add": snailfish.Add,
		"mag": snailfish.Magnitude,
		"reduce": func(a *ir.Number) *ir.Number {
			res := a.Clone()
			reduce.Reduce(res)
			return res
		},
		"stable": reduce.IsStable,
		"depth": func(a *ir.Number) int {
			return a.MaxDepth()
		},
		"str": encode.MustString,
		"parse": func(s string) (*ir.Number, error) {
			return parse.ParseString(s)
		},
	}
}

func exprOpts(env Env) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Operator("+", "add"),
		expr.Function("sum", func(params ...any) (any, error) {
			nums, err := toNumbers(params[0])
			if err != nil {
				return nil, err
			}
			res, _, err := search.Sum(nums)
			if err != nil {
				return nil, err
			}
			return res, nil
		}),
	}
}

func toNumbers(v any) ([]*ir.Number, error) {
	switch x := v.(type) {
	case []*ir.Number:
		return x, nil
	case []any:
		res := make([]*ir.Number, len(x))
		for i, e := range x {
			n, ok := e.(*ir.Number)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not a number", i, e)
			}
			res[i] = n
		}
		return res, nil
	}
	return nil, fmt.Errorf("expected a list of numbers, got %T", v)
}
