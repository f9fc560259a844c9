package ir

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// text renders n without depending on the encoder.
func text(n *Number) string {
	var sb strings.Builder
	var rec func(NodeID)
	rec = func(id NodeID) {
		if n.IsLiteral(id) {
			fmt.Fprintf(&sb, "%d", n.Value(id))
			return
		}
		sb.WriteByte('[')
		rec(n.Left(id))
		sb.WriteByte(',')
		rec(n.Right(id))
		sb.WriteByte(']')
	}
	rec(n.Root())
	return sb.String()
}

// p builds a number from ints and nested [2]any values.
func p(v any) *Number {
	b := &Builder{}
	var rec func(any) NodeID
	rec = func(v any) NodeID {
		switch x := v.(type) {
		case int:
			return b.Literal(x)
		case [2]any:
			l := rec(x[0])
			r := rec(x[1])
			return b.Pair(l, r)
		}
		panic(fmt.Sprintf("bad %T", v))
	}
	return b.Number(rec(v))
}

type pr = [2]any

func expectContract(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrContract) {
			t.Fatalf("expected ErrContract, got %v", r)
		}
	}()
	f()
}

func TestLiteral(t *testing.T) {
	n := Literal(7)
	if !n.IsLiteral(n.Root()) || n.Value(n.Root()) != 7 {
		t.Fatalf("got %s", text(n))
	}
	if n.Parent(n.Root()) != NoNode {
		t.Error("root has a parent")
	}
	expectContract(t, func() { Literal(-1) })
	expectContract(t, func() { n.Left(n.Root()) })
}

func TestPair(t *testing.T) {
	a := p(pr{1, 2})
	b := Literal(3)
	n := Pair(a, b)
	if got := text(n); got != "[[1,2],3]" {
		t.Fatalf("got %s", got)
	}
	if n.Len() != 5 {
		t.Errorf("len %d", n.Len())
	}
	l := n.Left(n.Root())
	if n.Parent(l) != n.Root() || n.Parent(n.Right(n.Root())) != n.Root() {
		t.Error("children do not point at root")
	}
	if n.Parent(n.Left(l)) != l {
		t.Error("grandchild does not point at its parent")
	}
	expectContract(t, func() { a.Root() })
	expectContract(t, func() { Pair(n, n) })
}

func TestClone(t *testing.T) {
	n := p(pr{pr{1, 2}, pr{3, 4}})
	c := n.Clone()
	c.SetValue(c.Left(c.Left(c.Root())), 9)
	if diff := cmp.Diff("[[1,2],[3,4]]", text(n)); diff != "" {
		t.Errorf("source changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("[[9,2],[3,4]]", text(c)); diff != "" {
		t.Errorf("clone (-want +got):\n%s", diff)
	}
}

func TestCloneCompacts(t *testing.T) {
	n := p(pr{pr{1, 2}, 3})
	n.Collapse(n.Left(n.Root()), 0)
	c := n.Clone()
	if c.Len() != 3 || len(c.nodes) != 3 {
		t.Errorf("clone has %d live of %d nodes", c.Len(), len(c.nodes))
	}
	if text(c) != "[0,3]" {
		t.Errorf("got %s", text(c))
	}
}

func TestDepthAndWalk(t *testing.T) {
	n := p(pr{pr{pr{pr{pr{9, 8}, 1}, 2}, 3}, 4})
	if d := n.MaxDepth(); d != 5 {
		t.Errorf("max depth %d", d)
	}
	var vals []int
	for _, id := range n.Literals() {
		vals = append(vals, n.Value(id))
	}
	if diff := cmp.Diff([]int{9, 8, 1, 2, 3, 4}, vals); diff != "" {
		t.Errorf("literals (-want +got):\n%s", diff)
	}
	n.Walk(func(id NodeID, depth int) bool {
		if d := n.Depth(id); d != depth {
			t.Errorf("node %d: walk depth %d, Depth %d", id, depth, d)
		}
		return true
	})
	count := 0
	if n.Walk(func(NodeID, int) bool { count++; return count < 3 }) {
		t.Error("stopped walk returned true")
	}
	if count != 3 {
		t.Errorf("visited %d", count)
	}
}

func TestNeighbours(t *testing.T) {
	n := p(pr{pr{6, pr{5, pr{4, pr{3, 2}}}}, 1})
	lits := n.Literals()
	for i, id := range lits {
		want := NoNode
		if i > 0 {
			want = lits[i-1]
		}
		if got := n.PrevLiteral(id); got != want {
			t.Errorf("prev of %d: got %d want %d", n.Value(id), got, want)
		}
		want = NoNode
		if i < len(lits)-1 {
			want = lits[i+1]
		}
		if got := n.NextLiteral(id); got != want {
			t.Errorf("next of %d: got %d want %d", n.Value(id), got, want)
		}
	}
	// [3,2] sits between 4 and 1
	inner := n.Parent(lits[4])
	if got := n.Value(n.PrevLiteral(inner)); got != 4 {
		t.Errorf("prev of pair %d", got)
	}
	if got := n.Value(n.NextLiteral(inner)); got != 1 {
		t.Errorf("next of pair %d", got)
	}
	if n.PrevLiteral(n.Root()) != NoNode || n.NextLiteral(n.Root()) != NoNode {
		t.Error("root has neighbours")
	}
}

func TestCollapseExpand(t *testing.T) {
	n := p(pr{pr{1, 2}, 3})
	pair := n.Left(n.Root())
	n.Collapse(pair, 0)
	if text(n) != "[0,3]" {
		t.Fatalf("collapse: %s", text(n))
	}
	if n.Len() != 3 {
		t.Errorf("len after collapse %d", n.Len())
	}
	l, r := n.Expand(n.Right(n.Root()), 5, 6)
	if text(n) != "[0,[5,6]]" {
		t.Fatalf("expand: %s", text(n))
	}
	if n.Parent(l) != n.Right(n.Root()) || n.Parent(r) != n.Right(n.Root()) {
		t.Error("new literals have the wrong parent")
	}
	if len(n.nodes) != 5 {
		t.Errorf("released slots not reused: %d nodes", len(n.nodes))
	}
	expectContract(t, func() { n.Collapse(l, 1) })
	expectContract(t, func() { n.Expand(n.Root(), 1, 1) })
	expectContract(t, func() { n.AddValue(l, -6) })
}

func TestReleasedHandle(t *testing.T) {
	n := p(pr{pr{1, 2}, 3})
	pair := n.Left(n.Root())
	gone := n.Left(pair)
	n.Collapse(pair, 0)
	expectContract(t, func() { n.Value(gone) })
	expectContract(t, func() { n.Type(NodeID(100)) })
}

func TestTypes(t *testing.T) {
	for _, typ := range Types() {
		if typ.IsLeaf() != (typ == LiteralType) {
			t.Errorf("%s: IsLeaf %v", typ, typ.IsLeaf())
		}
	}
}
