package reduce

import (
	"fmt"

	"github.com/tplews98/snailfish/ir"
)

type Rule int

const (
	RuleExplode Rule = iota
	RuleSplit
)

func (r Rule) String() string {
	switch r {
	case RuleExplode:
		return "explode"
	case RuleSplit:
		return "split"
	}
	return "<unknown rule>"
}

// Step describes one rewrite. For an explode, Left and Right are the values
// of the exploding pair and Prev and Next the literals that received them
// (ir.NoNode when there was none). For a split, Value is the literal that
// split and Left and Right its halves.
type Step struct {
	Rule  Rule
	Node  ir.NodeID
	Depth int
	Value int
	Left  int
	Right int
	Prev  ir.NodeID
	Next  ir.NodeID
}

func (s Step) String() string {
	switch s.Rule {
	case RuleExplode:
		return fmt.Sprintf("explode [%d,%d] at depth %d", s.Left, s.Right, s.Depth)
	case RuleSplit:
		return fmt.Sprintf("split %d into [%d,%d] at depth %d", s.Value, s.Left, s.Right, s.Depth)
	}
	return "<unknown step>"
}

type Stats struct {
	Explodes int `json:"explodes" yaml:"explodes"`
	Splits   int `json:"splits" yaml:"splits"`
}

func (s Stats) Steps() int {
	return s.Explodes + s.Splits
}

func (s Stats) Add(o Stats) Stats {
	return Stats{Explodes: s.Explodes + o.Explodes, Splits: s.Splits + o.Splits}
}

func (s *Stats) count(r Rule) {
	switch r {
	case RuleExplode:
		s.Explodes++
	case RuleSplit:
		s.Splits++
	}
}
