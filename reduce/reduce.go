package reduce

import (
	"github.com/tplews98/snailfish/debug"
	"github.com/tplews98/snailfish/ir"
)

// Reduce rewrites n in place until it is stable.
func Reduce(n *ir.Number, opts ...ReduceOption) Stats {
	rOpts := &reduceOpts{}
	for _, f := range opts {
		f(rOpts)
	}
	var st Stats
	for {
		s, ok := Next(n)
		if !ok {
			break
		}
		s = Apply(n, s)
		st.count(s.Rule)
		if debug.Steps() {
			debug.Logf("%s: %s\n", s, debug.Snail{Number: n})
		}
		if rOpts.observer != nil {
			rOpts.observer(s, n)
		}
	}
	if debug.Reduce() {
		debug.Logf("reduced with %d explodes, %d splits: %s\n", st.Explodes, st.Splits, debug.Snail{Number: n})
	}
	return st
}

// IsStable reports whether no rule applies to n.
func IsStable(n *ir.Number) bool {
	_, ok := Next(n)
	return !ok
}

// Next returns the step Reduce would apply next, without applying it.
// Prev and Next of an explode step are left unset until Apply.
func Next(n *ir.Number) (Step, bool) {
	if id, depth := findExplode(n); id != ir.NoNode {
		return Step{
			Rule:  RuleExplode,
			Node:  id,
			Depth: depth,
			Left:  n.Value(n.Left(id)),
			Right: n.Value(n.Right(id)),
			Prev:  ir.NoNode,
			Next:  ir.NoNode,
		}, true
	}
	if id, depth := findSplit(n); id != ir.NoNode {
		v := n.Value(id)
		return Step{
			Rule:  RuleSplit,
			Node:  id,
			Depth: depth,
			Value: v,
			Left:  v / 2,
			Right: (v + 1) / 2,
			Prev:  ir.NoNode,
			Next:  ir.NoNode,
		}, true
	}
	return Step{}, false
}

// Apply performs s on n and returns s completed with what was touched.
func Apply(n *ir.Number, s Step) Step {
	switch s.Rule {
	case RuleExplode:
		return Explode(n, s.Node)
	case RuleSplit:
		return Split(n, s.Node)
	}
	panic("reduce: unknown rule " + s.Rule.String())
}

func findExplode(n *ir.Number) (ir.NodeID, int) {
	res, resDepth := ir.NoNode, 0
	n.Walk(func(id ir.NodeID, depth int) bool {
		if depth < ir.ExplodeDepth || !n.IsPair(id) {
			return true
		}
		if !n.IsLiteral(n.Left(id)) || !n.IsLiteral(n.Right(id)) {
			return true
		}
		res, resDepth = id, depth
		return false
	})
	return res, resDepth
}

func findSplit(n *ir.Number) (ir.NodeID, int) {
	res, resDepth := ir.NoNode, 0
	n.Walk(func(id ir.NodeID, depth int) bool {
		if !n.IsLiteral(id) || n.Value(id) < ir.SplitValue {
			return true
		}
		res, resDepth = id, depth
		return false
	})
	return res, resDepth
}
