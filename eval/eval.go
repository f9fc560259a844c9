package eval

import (
	"fmt"

	"github.com/tplews98/snailfish/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Eval compiles and runs code with nums bound to n.
func Eval(code string, nums []*ir.Number) (any, error) {
	env := NewEnv(nums)
	program, err := expr.Compile(code, exprOpts(env)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, code, err)
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, code, err)
	}
	return res, nil
}
