package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
)

// Snail formats a number with its encoded text.
type Snail struct{ *ir.Number }

func (y Snail) String() string {
	x := y.Number
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeNewline(false)); err != nil {
		return fmt.Sprintf("[raw *ir.Number] %v", x)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
