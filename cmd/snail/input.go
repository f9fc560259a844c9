package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/parse"

	"github.com/scott-cotton/cli"
)

// readNumbers reads the numbers of all files in order, or of the command
// input when there are none.
func readNumbers(cfg *MainConfig, cc *cli.Context, files []string) ([]*ir.Number, error) {
	if len(files) == 0 {
		return readReader(cfg, cc.In, "-")
	}
	var res []*ir.Number
	for _, file := range files {
		nums, err := readFile(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, nums...)
	}
	return res, nil
}

func readFile(cfg *MainConfig, cc *cli.Context, file string) ([]*ir.Number, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return readReader(cfg, r, file)
}

func readReader(cfg *MainConfig, r io.Reader, name string) ([]*ir.Number, error) {
	nums, err := parse.ParseLines(r, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", name, err)
	}
	theLog.Debug("read numbers", "file", name, "count", len(nums))
	return nums, nil
}
