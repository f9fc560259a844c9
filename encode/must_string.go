package encode

import (
	"bytes"
	"strings"

	"github.com/tplews98/snailfish/ir"
)

func MustString(n *ir.Number) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
