package token

import "fmt"

// Tokenize appends the tokens of d to dst.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	doc := NewPosDoc(d)
	if len(d) == 0 {
		return nil, NewTokenizeErr(ErrEmptyDoc, doc.end())
	}
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case isDigit(c):
			j := i + 1
			for j < len(d) && isDigit(d[j]) {
				j++
			}
			dst = append(dst, Token{Type: TInteger, Pos: doc.Pos(i), Bytes: d[i:j]})
			i = j
		default:
			return nil, UnexpectedErr(fmt.Sprintf("%q", c), doc.Pos(i))
		}
	}
	return dst, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Balance checks that square brackets in toks nest properly.
func Balance(toks []Token) error {
	var open []*Token
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case TLSquare:
			open = append(open, t)
		case TRSquare:
			if len(open) == 0 {
				return &ErrImbalancedStructure{Close: t}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &ErrImbalancedStructure{Open: open[len(open)-1]}
	}
	return nil
}
