package libdiff

import (
	"io"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

type Edit struct {
	Op   Op
	Text string
}

func DiffString(from, to string) []Edit {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res = append(res, Edit{Op: OpInsert, Text: diff.Text})
		case diffpatch.DiffDelete:
			res = append(res, Edit{Op: OpDelete, Text: diff.Text})
		case diffpatch.DiffEqual:
			res = append(res, Edit{Op: OpEqual, Text: diff.Text})
		}
	}
	return res
}

// DiffNumbers diffs the encoded text of from and to.
func DiffNumbers(from, to *ir.Number) []Edit {
	return DiffString(encode.MustString(from), encode.MustString(to))
}

// Changed returns the number of inserted and deleted bytes.
func Changed(edits []Edit) int {
	res := 0
	for _, e := range edits {
		if e.Op != OpEqual {
			res += len(e.Text)
		}
	}
	return res
}

// Render writes edits as one line. With colors, insertions and deletions
// are colored; otherwise they are written as {+ins+} and [-del-].
func Render(w io.Writer, edits []Edit, c *encode.Colors) error {
	for _, e := range edits {
		s := e.Text
		switch e.Op {
		case OpInsert:
			if c != nil {
				s = c.Color(ir.LiteralType, encode.InsertColor, s)
			} else {
				s = "{+" + s + "+}"
			}
		case OpDelete:
			if c != nil {
				s = c.Color(ir.LiteralType, encode.DeleteColor, s)
			} else {
				s = "[-" + s + "-]"
			}
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
