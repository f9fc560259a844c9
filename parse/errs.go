package parse

import (
	"errors"
)

var (
	// ErrMalformedNumber is wrapped by every error Parse returns.
	ErrMalformedNumber = errors.New("malformed number")
)
