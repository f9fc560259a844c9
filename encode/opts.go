package encode

import "github.com/tplews98/snailfish/ir"

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNewline controls the trailing newline written after the number.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}

// EncodeHighlight marks the subtrees at ids with HighlightColor. It has no
// effect without colors.
func EncodeHighlight(ids ...ir.NodeID) EncodeOption {
	return func(es *EncState) {
		if es.highlight == nil {
			es.highlight = map[ir.NodeID]bool{}
		}
		for _, id := range ids {
			es.highlight[id] = true
		}
	}
}

// EncodeFrom encodes only the subtree at id.
func EncodeFrom(id ir.NodeID) EncodeOption {
	return func(es *EncState) { es.from = id }
}
