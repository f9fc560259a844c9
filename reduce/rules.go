package reduce

import (
	"github.com/tplews98/snailfish/ir"
)

// Explode explodes the pair at id, which must have two literal children.
// The depth of id is not checked.
func Explode(n *ir.Number, id ir.NodeID) Step {
	l := n.Value(n.Left(id))
	r := n.Value(n.Right(id))
	s := Step{
		Rule:  RuleExplode,
		Node:  id,
		Depth: n.Depth(id),
		Left:  l,
		Right: r,
		Prev:  n.PrevLiteral(id),
		Next:  n.NextLiteral(id),
	}
	if s.Prev != ir.NoNode {
		n.AddValue(s.Prev, l)
	}
	if s.Next != ir.NoNode {
		n.AddValue(s.Next, r)
	}
	n.Collapse(id, 0)
	return s
}

// Split splits the literal at id. The value is not checked against
// ir.SplitValue.
func Split(n *ir.Number, id ir.NodeID) Step {
	v := n.Value(id)
	s := Step{
		Rule:  RuleSplit,
		Node:  id,
		Depth: n.Depth(id),
		Value: v,
		Left:  v / 2,
		Right: (v + 1) / 2,
		Prev:  ir.NoNode,
		Next:  ir.NoNode,
	}
	n.Expand(id, s.Left, s.Right)
	return s
}
