package parse

import (
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/token"
)

type parseOpts struct {
	positions   map[ir.NodeID]*token.Pos
	requirePair bool
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of every parsed node in m.
func ParsePositions(m map[ir.NodeID]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// RequirePair rejects input whose top level is a bare literal.
func RequirePair() ParseOption {
	return func(o *parseOpts) { o.requirePair = true }
}
