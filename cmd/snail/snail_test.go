package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/tplews98/snailfish/format"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/parse"
	"github.com/tplews98/snailfish/reduce"
	"github.com/tplews98/snailfish/search"

	"github.com/google/go-cmp/cmp"
)

func homework(t *testing.T) []*ir.Number {
	t.Helper()
	f, err := os.Open("../../testdata/homework.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	nums, err := parse.ParseLines(f, parse.RequirePair())
	if err != nil {
		t.Fatal(err)
	}
	return nums
}

func TestWriteSolveText(t *testing.T) {
	rep, err := search.Solve(homework(t), search.Workers(2))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeSolveText(buf, rep); err != nil {
		t.Fatal(err)
	}
	want := "Part 1: Magnitude of final number = 4140\n" +
		"Part 2: Maximum magnitude of two nums summed = 3993\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSolveOutputJSON(t *testing.T) {
	rep, err := search.Solve(homework(t))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeMarshaled(buf, format.JSONFormat.Marshal, toSolveOutput(rep)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"sumMagnitude": 4140`, `"magnitude": 3993`, `"i": 8`, `"j": 0`} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("missing %s in %s", want, buf)
		}
	}
}

func TestPairOutputTooFew(t *testing.T) {
	best, err := search.MaxPair(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := toPairOutput(best)
	if out.Sum != "" || out.I != -1 || out.J != -1 {
		t.Errorf("got %+v", out)
	}
}

func TestToMarshalable(t *testing.T) {
	n := ir.Pair(ir.Literal(1), ir.Literal(2))
	got := toMarshalable([]any{n, 3, []*ir.Number{n.Clone()}})
	want := []any{"[1,2]", 3, []string{"[1,2]"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWritePairText(t *testing.T) {
	best, err := search.MaxPair(homework(t), search.Workers(1))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writePairText(buf, best, nil); err != nil {
		t.Fatal(err)
	}
	want := "3993: number 9 + number 1\n" +
		"[[[[7,8],[6,6]],[[6,0],[7,7]]],[[[7,8],[8,8]],[[7,9],[0,6]]]]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReduceAll(t *testing.T) {
	n, err := parse.ParseString("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	if err != nil {
		t.Fatal(err)
	}
	got := reduceAll([]*ir.Number{n})
	want := []reduceOutput{{
		Number: 1,
		Result: "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]",
		Stats:  reduce.Stats{Explodes: 3, Splits: 2},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeMarshaled(buf, format.YAMLFormat.Marshal, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("explodes: 3")) {
		t.Errorf("yaml: %s", buf)
	}
}

func TestViewAll(t *testing.T) {
	nums := []*ir.Number{
		ir.Pair(ir.Literal(10), ir.Literal(1)),
		ir.Pair(ir.Literal(9), ir.Literal(1)),
	}
	got := viewAll(nums)
	want := []viewOutput{
		{Number: 1, Text: "[10,1]", Depth: 1, Stable: false},
		{Number: 2, Text: "[9,1]", Depth: 1, Stable: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
