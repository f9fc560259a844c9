package ir

const (
	// ExplodeDepth is the depth at which a pair of two literals explodes.
	ExplodeDepth = 4
	// SplitValue is the smallest literal value that splits.
	SplitValue = 10
)
