package ir

import "cmp"

// Compare returns an integer comparing two numbers.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Literals order before pairs; pairs compare left subtree first.
func Compare(a, b *Number) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return compareAt(a, a.Root(), b, b.Root())
}

func compareAt(a *Number, ai NodeID, b *Number, bi NodeID) int {
	an, bn := a.at(ai), b.at(bi)
	if an.typ != bn.typ {
		return cmp.Compare(an.typ, bn.typ)
	}
	if an.typ == LiteralType {
		return cmp.Compare(an.value, bn.value)
	}
	if c := compareAt(a, an.left, b, bn.left); c != 0 {
		return c
	}
	return compareAt(a, an.right, b, bn.right)
}

// Equal reports whether a and b have the same structure and values.
// Arena layout is not compared.
func Equal(a, b *Number) bool {
	return Compare(a, b) == 0
}
