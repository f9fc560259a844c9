// Package encode writes snailfish numbers as text.
//
// The output uses the same notation package parse accepts, so
//
//	parse.Parse([]byte(encode.MustString(n)))
//
// reproduces n. Options add a trailing newline (on by default), terminal
// colors and highlighting of chosen nodes. With colors enabled, pairs that
// are due to explode and literals that are due to split are marked.
package encode
