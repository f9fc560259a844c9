package snailfish

import (
	"testing"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t testing.TB, s string) *ir.Number {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, sum string
	}{
		{"[1,2]", "[[3,4],5]", "[[1,2],[[3,4],5]]"},
		{"[[[[4,3],4],4],[7,[[8,4],9]]]", "[1,1]", "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]"},
		{
			"[[[0,[4,5]],[0,0]],[[[4,5],[2,6]],[9,5]]]",
			"[7,[[[3,7],[4,3]],[[6,3],[8,8]]]]",
			"[[[[4,0],[5,4]],[[7,7],[6,0]]],[[8,[7,7]],[[7,9],[5,0]]]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.sum, func(t *testing.T) {
			a, b := mustParse(t, tt.a), mustParse(t, tt.b)
			res := Add(a, b)
			if diff := cmp.Diff(tt.sum, encode.MustString(res)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if encode.MustString(a) != tt.a || encode.MustString(b) != tt.b {
				t.Error("operands modified")
			}
		})
	}
}

func TestAddStats(t *testing.T) {
	a := mustParse(t, "[[[[4,3],4],4],[7,[[8,4],9]]]")
	b := mustParse(t, "[1,1]")
	_, st := AddStats(a, b)
	if st.Explodes != 3 || st.Splits != 2 {
		t.Errorf("got %+v", st)
	}
}

func TestAddNotCommutative(t *testing.T) {
	a := mustParse(t, "[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]")
	b := mustParse(t, "[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]")
	ab, ba := Add(a, b), Add(b, a)
	if ir.Equal(ab, ba) {
		t.Errorf("a+b == b+a == %s", encode.MustString(ab))
	}
	if m := Magnitude(ab); m != 3993 {
		t.Errorf("magnitude %d", m)
	}
}

func TestAddSameOperand(t *testing.T) {
	a := mustParse(t, "[9,1]")
	if got := encode.MustString(Add(a, a)); got != "[[9,1],[9,1]]" {
		t.Errorf("got %s", got)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		in  string
		mag int
	}{
		{"7", 7},
		{"[9,1]", 29},
		{"[1,9]", 21},
		{"[[9,1],[1,9]]", 129},
		{"[[1,2],[[3,4],5]]", 143},
		{"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", 1384},
		{"[[[[1,1],[2,2]],[3,3]],[4,4]]", 445},
		{"[[[[3,0],[5,3]],[4,4]],[5,5]]", 791},
		{"[[[[5,0],[7,4]],[5,5]],[6,6]]", 1137},
		{"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]", 3488},
		{"[[[[6,6],[7,6]],[[7,7],[7,0]]],[[[7,7],[7,7]],[[7,8],[9,9]]]]", 4140},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Magnitude(mustParse(t, tt.in)); got != tt.mag {
				t.Errorf("got %d want %d", got, tt.mag)
			}
		})
	}
}

func TestMagnitudeAt(t *testing.T) {
	n := mustParse(t, "[[1,2],[[3,4],5]]")
	if got := MagnitudeAt(n, n.Left(n.Root())); got != 7 {
		t.Errorf("got %d", got)
	}
}

func BenchmarkAdd(b *testing.B) {
	x := mustParse(b, "[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]")
	y := mustParse(b, "[[[5,[2,8]],4],[5,[[9,9],0]]]")
	b.ResetTimer()
	for range b.N {
		Add(x, y)
	}
}
