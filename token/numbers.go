package token

import (
	"fmt"
	"strconv"
)

// Int returns the value of a TInteger token.
func (t *Token) Int() (int, error) {
	if t.Type != TInteger {
		return 0, ExpectedErr("integer", t.Pos)
	}
	v, err := strconv.Atoi(string(t.Bytes))
	if err != nil {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %w", ErrNumber, err), t.Pos)
	}
	return v, nil
}
