package parse

import (
	"fmt"

	"github.com/tplews98/snailfish/debug"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Number, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNumber, err)
	}
	if err := token.Balance(toks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNumber, err)
	}
	if pOpts.requirePair && toks[0].Type != token.TLSquare {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNumber, token.ExpectedErr("'['", toks[0].Pos))
	}
	b := &ir.Builder{}
	off := 0
	root, err := parseNumber(toks, b, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w: trailing material %q %s", ErrMalformedNumber, string(t.Bytes), t.Pos)
	}
	res := b.Number(root)
	if debug.Parse() {
		debug.Logf("parsed %d nodes: %s\n", res.Len(), debug.Snail{Number: res})
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Number, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(id ir.NodeID, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[id] = pos
	}
}

func parseNumber(toks []token.Token, b *ir.Builder, pi *int, opts *parseOpts) (ir.NodeID, error) {
	if *pi >= len(toks) {
		last := &toks[len(toks)-1]
		return ir.NoNode, fmt.Errorf("%w: unexpected end after %s", ErrMalformedNumber, last.Pos)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TInteger:
		v, err := t.Int()
		if err != nil {
			return ir.NoNode, fmt.Errorf("%w: %w", ErrMalformedNumber, err)
		}
		*pi++
		id := b.Literal(v)
		trackPos(id, t.Pos, opts)
		return id, nil
	case token.TLSquare:
		*pi++
		l, err := parseNumber(toks, b, pi, opts)
		if err != nil {
			return ir.NoNode, err
		}
		if err := expect(toks, pi, token.TComma, "','"); err != nil {
			return ir.NoNode, err
		}
		r, err := parseNumber(toks, b, pi, opts)
		if err != nil {
			return ir.NoNode, err
		}
		if err := expect(toks, pi, token.TRSquare, "']'"); err != nil {
			return ir.NoNode, err
		}
		id := b.Pair(l, r)
		trackPos(id, t.Pos, opts)
		return id, nil
	default:
		return ir.NoNode, fmt.Errorf("%w: %w", ErrMalformedNumber, token.UnexpectedErr(string(t.Bytes), t.Pos))
	}
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) {
		last := &toks[len(toks)-1]
		return fmt.Errorf("%w: %w", ErrMalformedNumber, token.ExpectedErr(what, last.Pos))
	}
	t := &toks[*pi]
	if t.Type != tt {
		return fmt.Errorf("%w: %w", ErrMalformedNumber, token.ExpectedErr(what, t.Pos))
	}
	*pi++
	return nil
}
