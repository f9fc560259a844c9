// Package parse parses snailfish number text into ir numbers.
//
// # Usage
//
//	// Parse one number
//	n, err := parse.Parse([]byte(`[[1,2],3]`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string, requiring a pair at the top
//	n, err := parse.ParseString(`[1,1]`, parse.RequirePair())
//
//	// Parse one number per line
//	nums, err := parse.ParseLines(os.Stdin)
//
// The grammar is
//
//	Number  := '[' Number ',' Number ']' | Literal
//	Literal := digit { digit }
//
// Parsing consumes the whole input and has no nesting limit. All errors wrap
// ErrMalformedNumber and name the offending position.
//
// # Related Packages
//
//   - github.com/tplews98/snailfish/ir - Number representation
//   - github.com/tplews98/snailfish/encode - Encode numbers to text
//   - github.com/tplews98/snailfish/token - Tokenization
package parse
