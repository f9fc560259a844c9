package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/token"

	"github.com/google/go-cmp/cmp"
)

func TestParseOK(t *testing.T) {
	ins := []string{
		`[1,2]`,
		`[[1,2],3]`,
		`[9,[8,7]]`,
		`[[1,9],[8,5]]`,
		`[[[[1,2],[3,4]],[[5,6],[7,8]]],9]`,
		`[[[9,[3,8]],[[0,9],6]],[[[3,7],[4,9]],3]]`,
		`[[[[1,3],[5,3]],[[1,3],[8,7]]],[[[4,9],[6,9]],[[8,2],[7,3]]]]`,
		`[[[[[9,8],1],2],3],4]`,
		`[10,123]`,
		`5`,
	}
	for _, in := range ins {
		t.Run(in, func(t *testing.T) {
			n, err := ParseString(in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(in, encode.MustString(n)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	n, err := ParseString(`[[1,2],3]`)
	if err != nil {
		t.Fatal(err)
	}
	root := n.Root()
	l := n.Left(root)
	if !n.IsPair(l) || n.Value(n.Left(l)) != 1 || n.Value(n.Right(l)) != 2 {
		t.Errorf("bad left %s", encode.MustString(n))
	}
	if n.Value(n.Right(root)) != 3 {
		t.Errorf("bad right %s", encode.MustString(n))
	}
	if n.Parent(n.Left(l)) != l || n.Parent(l) != root {
		t.Error("bad parents")
	}
}

func TestParseLeadingZeros(t *testing.T) {
	n, err := ParseString(`[007,0]`)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(n); got != "[7,0]" {
		t.Errorf("got %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	ins := []string{
		``,
		`[`,
		`]`,
		`[]`,
		`[1]`,
		`[1,]`,
		`[,1]`,
		`[1,2,3]`,
		`[1,2]]`,
		`[[1,2]`,
		`[1,2][3,4]`,
		`[1 ,2]`,
		`[-1,2]`,
		`[1.5,2]`,
		`[a,b]`,
		`1,2`,
		`[1,2],`,
		`[99999999999999999999999,1]`,
	}
	for _, in := range ins {
		t.Run(in, func(t *testing.T) {
			n, err := ParseString(in)
			if err == nil {
				t.Fatalf("parsed %q as %s", in, encode.MustString(n))
			}
			if !errors.Is(err, ErrMalformedNumber) {
				t.Errorf("expected ErrMalformedNumber, got %v", err)
			}
		})
	}
}

func TestRequirePair(t *testing.T) {
	if _, err := ParseString(`5`, RequirePair()); !errors.Is(err, ErrMalformedNumber) {
		t.Errorf("expected ErrMalformedNumber, got %v", err)
	}
	if _, err := ParseString(`[5,5]`, RequirePair()); err != nil {
		t.Error(err)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[ir.NodeID]*token.Pos{}
	n, err := ParseString(`[[1,22],3]`, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != n.Len() {
		t.Fatalf("%d positions for %d nodes", len(pos), n.Len())
	}
	l := n.Left(n.Root())
	want := map[ir.NodeID]int{
		n.Root():          0,
		l:                 1,
		n.Left(l):         2,
		n.Right(l):        4,
		n.Right(n.Root()): 8,
	}
	for id, off := range want {
		if pos[id].I != off {
			t.Errorf("node %d at %d, want %d", id, pos[id].I, off)
		}
	}
}

func TestParseLines(t *testing.T) {
	in := "[1,2]\r\n\n  [[3,4],5]\n\n[6,[7,8]]"
	nums, err := ParseLines(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, n := range nums {
		got = append(got, encode.MustString(n))
	}
	want := []string{"[1,2]", "[[3,4],5]", "[6,[7,8]]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseLinesError(t *testing.T) {
	_, err := ParseLines(strings.NewReader("[1,2]\n[3,x]\n"))
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("expected ErrMalformedNumber, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("no line in %q", err)
	}
}

func TestParseLinesEmpty(t *testing.T) {
	nums, err := ParseLines(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nums) != 0 {
		t.Errorf("got %d numbers", len(nums))
	}
}

func TestParseDeep(t *testing.T) {
	const depth = 5000
	in := strings.Repeat("[", depth) + "1" + strings.Repeat(",2]", depth)
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.Len() != 2*depth+1 {
		t.Errorf("%d nodes", n.Len())
	}
	if d := n.MaxDepth(); d != depth {
		t.Errorf("max depth %d", d)
	}
	if encode.MustString(n) != in {
		t.Error("deep number does not round trip")
	}
}
