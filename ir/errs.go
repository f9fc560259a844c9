package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrContract marks misuse of the tree API: a handle that does not
	// name a live node, or an operation applied to the wrong kind of node.
	ErrContract = errors.New("number contract violation")
)

func contractf(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...)))
}
