package reduce

import "github.com/tplews98/snailfish/ir"

type reduceOpts struct {
	observer func(Step, *ir.Number)
}

type ReduceOption func(*reduceOpts)

// WithObserver calls f after every applied step with the step and the
// number as it stands after the step.
func WithObserver(f func(Step, *ir.Number)) ReduceOption {
	return func(o *reduceOpts) { o.observer = f }
}
