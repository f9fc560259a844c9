package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpected = errors.New("unexpected input")
	ErrNumber     = errors.New("bad number")
	ErrEmptyDoc   = errors.New("empty document")
	ErrDocBalance = errors.New("imbalanced document")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}

type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrDocBalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	return ErrDocBalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s", string(i.Open.Bytes),
		i.Open.Pos.String())
}
