package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/tplews98/snailfish/encode"
	"github.com/tplews98/snailfish/format"
	"github.com/tplews98/snailfish/parse"
	"github.com/tplews98/snailfish/search"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`
	Gops    bool `cli:"name=gops desc='start a gops agent while running'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat == nil {
		return format.TextFormat
	}
	return *cfg.OutFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.RequirePair()}
}

// colors returns the colors to encode with on w, or nil for none.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	c := cfg.colors(w)
	if c == nil {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(c)}
}

func searchOpts(workers int) []search.SearchOption {
	return []search.SearchOption{search.Workers(workers)}
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

type SolveConfig struct {
	*MainConfig
	Workers int `cli:"name=w desc='goroutines for the pairwise search'"`

	Solve *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type MaxConfig struct {
	*MainConfig
	Workers int `cli:"name=w desc='goroutines for the pairwise search'"`

	Max *cli.Command
}

type ReduceConfig struct {
	*MainConfig

	Trace bool `cli:"name=trace desc='show every explode and split'"`
	Diff  bool `cli:"name=diff desc='with -trace, show what each step changed'"`

	Reduce *cli.Command
}

type MagConfig struct {
	*MainConfig

	Mag *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type BenchConfig struct {
	*MainConfig
	Workers int `cli:"name=w desc='goroutines for the pairwise search'"`
	Runs    int `cli:"name=n desc='number of runs'"`

	Bench *cli.Command
}
