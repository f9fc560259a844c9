package token

type TokenType int

const (
	TLSquare TokenType = iota
	TRSquare
	TComma
	TInteger
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TInteger: "TInteger",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}
