package search

import "errors"

var ErrNoNumbers = errors.New("no numbers to sum")
