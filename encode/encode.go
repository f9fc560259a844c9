package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tplews98/snailfish/ir"
)

type EncState struct {
	newline   bool
	from      ir.NodeID
	highlight map[ir.NodeID]bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(n *ir.Number, w io.Writer, opts ...EncodeOption) error {
	if n == nil {
		return fmt.Errorf("%w: nil number", ErrEncoding)
	}
	es := &EncState{
		newline: true,
		from:    ir.NoNode,
	}
	for _, opt := range opts {
		opt(es)
	}
	id := es.from
	depth := 0
	if id == ir.NoNode {
		id = n.Root()
	} else {
		depth = n.Depth(id)
	}
	if err := encode(n, id, depth, false, w, es); err != nil {
		return err
	}
	if es.newline {
		return writeString(w, "\n")
	}
	return nil
}

func encode(n *ir.Number, id ir.NodeID, depth int, hl bool, w io.Writer, es *EncState) error {
	hl = hl || es.highlight[id]
	if n.IsLiteral(id) {
		v := n.Value(id)
		attr := ValueColor
		if v >= ir.SplitValue {
			attr = HotColor
		}
		if hl {
			attr = HighlightColor
		}
		return writeColored(w, es, ir.LiteralType, attr, strconv.Itoa(v))
	}
	l, r := n.Left(id), n.Right(id)
	attr := SepColor
	if depth >= ir.ExplodeDepth && n.IsLiteral(l) && n.IsLiteral(r) {
		attr = HotColor
	}
	if hl {
		attr = HighlightColor
	}
	if err := writeColored(w, es, ir.PairType, attr, "["); err != nil {
		return err
	}
	if err := encode(n, l, depth+1, hl, w, es); err != nil {
		return err
	}
	if err := writeColored(w, es, ir.PairType, attr, ","); err != nil {
		return err
	}
	if err := encode(n, r, depth+1, hl, w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.PairType, attr, "]")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color == nil {
		return writeString(w, s)
	}
	return writeString(w, es.Color(t, a, s))
}
