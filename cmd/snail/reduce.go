package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/libdiff"
	"github.com/tplews98/snailfish/reduce"

	"github.com/scott-cotton/cli"
)

func reduceNumbers(cfg *ReduceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reduce.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Diff && !cfg.Trace {
		return fmt.Errorf("%w: -diff requires -trace", cli.ErrUsage)
	}
	f := cfg.format()
	if cfg.Trace && !f.IsText() {
		return fmt.Errorf("%w: -trace writes text, not %s", cli.ErrUsage, f)
	}
	nums, err := readNumbers(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	if !f.IsText() {
		return writeMarshaled(cc.Out, f.Marshal, reduceAll(nums))
	}
	w := cc.Out
	encOpts := cfg.encOpts(w)
	for i, n := range nums {
		if cfg.Trace {
			if err := traceReduce(cfg, w, i, n); err != nil {
				return err
			}
			continue
		}
		reduce.Reduce(n)
		if err := encode.Encode(n, w, encOpts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

type reduceOutput struct {
	Number int          `json:"number" yaml:"number"`
	Result string       `json:"result" yaml:"result"`
	Stats  reduce.Stats `json:"stats" yaml:"stats"`
}

// reduceAll reduces nums in place and reports each result.
func reduceAll(nums []*ir.Number) []reduceOutput {
	res := make([]reduceOutput, len(nums))
	for i, n := range nums {
		st := reduce.Reduce(n)
		res[i] = reduceOutput{Number: i + 1, Result: encode.MustString(n), Stats: st}
	}
	return res
}

func traceReduce(cfg *ReduceConfig, w io.Writer, i int, n *ir.Number) error {
	colors := cfg.colors(w)
	var encOpts []encode.EncodeOption
	if colors != nil {
		encOpts = append(encOpts, encode.EncodeColors(colors))
	}
	if _, err := fmt.Fprintf(w, "number %d: ", i+1); err != nil {
		return err
	}
	if err := encode.Encode(n, w, encOpts...); err != nil {
		return err
	}
	prev := encode.MustString(n)
	k := 0
	var werr error
	st := reduce.Reduce(n, reduce.WithObserver(func(s reduce.Step, n *ir.Number) {
		if werr != nil {
			return
		}
		k++
		werr = writeStep(w, k, s, n, prev, cfg.Diff, colors, encOpts)
		prev = encode.MustString(n)
	}))
	if werr != nil {
		return werr
	}
	_, err := fmt.Fprintf(w, "  stable after %d explodes, %d splits\n", st.Explodes, st.Splits)
	return err
}

func writeStep(w io.Writer, k int, s reduce.Step, n *ir.Number, prev string, diff bool, colors *encode.Colors, encOpts []encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "  %3d %-32s ", k, s.String())
	if diff {
		edits := libdiff.DiffString(prev, encode.MustString(n))
		if err := libdiff.Render(buf, edits, colors); err != nil {
			return err
		}
	} else {
		hl := []ir.NodeID{s.Node}
		if s.Prev != ir.NoNode {
			hl = append(hl, s.Prev)
		}
		if s.Next != ir.NoNode {
			hl = append(hl, s.Next)
		}
		opts := append(encOpts[:len(encOpts):len(encOpts)], encode.EncodeHighlight(hl...))
		if err := encode.Encode(n, buf, opts...); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
