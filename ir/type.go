package ir

type Type int

const (
	LiteralType Type = iota
	PairType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LiteralType: "Literal",
		PairType:    "Pair",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		LiteralType,
		PairType,
	}
}

// IsLeaf reports whether nodes of type t have no children.
func (t Type) IsLeaf() bool {
	return t == LiteralType
}
