package snailfish

import "github.com/tplews98/snailfish/ir"

// Magnitude is the value of a literal, or 3 times the magnitude of the left
// element plus 2 times the magnitude of the right element of a pair.
func Magnitude(n *ir.Number) int {
	return MagnitudeAt(n, n.Root())
}

// MagnitudeAt is the magnitude of the subtree at id.
func MagnitudeAt(n *ir.Number, id ir.NodeID) int {
	if n.IsLiteral(id) {
		return n.Value(id)
	}
	return 3*MagnitudeAt(n, n.Left(id)) + 2*MagnitudeAt(n, n.Right(id))
}
