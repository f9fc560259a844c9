package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/tplews98/snailfish/ir"
)

const maxLine = 1 << 24

// ParseLines parses one number per line of r. Surrounding white space is
// trimmed and blank lines are skipped.
func ParseLines(r io.Reader, opts ...ParseOption) ([]*ir.Number, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var res []*ir.Number
	ln := 0
	for sc.Scan() {
		ln++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		n, err := Parse(bytes.Clone(line), opts...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		res = append(res, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return res, nil
}
