package snailfish

import (
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/reduce"
)

// Add returns the reduced sum [a,b]. Addition is not commutative.
func Add(a, b *ir.Number) *ir.Number {
	res, _ := AddStats(a, b)
	return res
}

// AddStats is Add, also returning the work the reduction did.
func AddStats(a, b *ir.Number, opts ...reduce.ReduceOption) (*ir.Number, reduce.Stats) {
	res := ir.Pair(a.Clone(), b.Clone())
	st := reduce.Reduce(res, opts...)
	return res, st
}
