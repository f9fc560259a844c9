// Package token splits snailfish number text into tokens.
//
// The notation has four token types: '[', ']', ',' and runs of ASCII
// digits. Any other byte, whitespace included, is an error. Every token
// carries a Pos giving its offset in the input together with a short
// excerpt for error messages.
package token
