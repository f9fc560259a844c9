package search

import (
	"github.com/tplews98/snailfish"
	"github.com/tplews98/snailfish/debug"
	"github.com/tplews98/snailfish/ir"
	"github.com/tplews98/snailfish/reduce"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of MaxPair. I and J index the numbers whose sum,
// in that order, has the largest magnitude; they are -1 when fewer than
// two numbers were given.
type Result struct {
	Magnitude int          `json:"magnitude" yaml:"magnitude"`
	I         int          `json:"i" yaml:"i"`
	J         int          `json:"j" yaml:"j"`
	Additions int          `json:"additions" yaml:"additions"`
	Stats     reduce.Stats `json:"stats" yaml:"stats"`

	Sum *ir.Number `json:"-" yaml:"-"`
}

// Report holds both answers for a list of numbers.
type Report struct {
	Numbers      int          `json:"numbers" yaml:"numbers"`
	SumMagnitude int          `json:"sumMagnitude" yaml:"sumMagnitude"`
	SumStats     reduce.Stats `json:"sumStats" yaml:"sumStats"`
	Max          Result       `json:"max" yaml:"max"`

	Sum *ir.Number `json:"-" yaml:"-"`
}

// Sum adds nums from left to right and returns the final number.
func Sum(nums []*ir.Number) (*ir.Number, reduce.Stats, error) {
	var st reduce.Stats
	if len(nums) == 0 {
		return nil, st, ErrNoNumbers
	}
	acc := nums[0].Clone()
	for _, x := range nums[1:] {
		// acc is ours, so it moves into the pair instead of being copied.
		acc = ir.Pair(acc, x.Clone())
		st = st.Add(reduce.Reduce(acc))
	}
	if debug.Search() {
		debug.Logf("sum of %d numbers: %s\n", len(nums), debug.Snail{Number: acc})
	}
	return acc, st, nil
}

// MaxPair evaluates every ordered pair (i, j), i != j, of nums and returns
// the one whose sum has the largest magnitude. Ties go to the pair that
// comes first ordering by i, then j.
func MaxPair(nums []*ir.Number, opts ...SearchOption) (Result, error) {
	sOpts := newOpts(opts)
	if len(nums) < 2 {
		return Result{I: -1, J: -1}, nil
	}
	rows := make([]Result, len(nums))
	if sOpts.workers < 2 {
		for i := range nums {
			rows[i] = bestInRow(nums, i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(sOpts.workers)
		for i := range nums {
			g.Go(func() error {
				rows[i] = bestInRow(nums, i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}
	best := Result{I: -1, J: -1}
	var additions int
	var st reduce.Stats
	for i := range rows {
		row := &rows[i]
		additions += row.Additions
		st = st.Add(row.Stats)
		if best.I < 0 || row.Magnitude > best.Magnitude {
			best = *row
		}
	}
	best.Additions = additions
	best.Stats = st
	if debug.Search() {
		debug.Logf("max pair %d+%d = %d after %d additions\n", best.I, best.J, best.Magnitude, additions)
	}
	return best, nil
}

func bestInRow(nums []*ir.Number, i int) Result {
	best := Result{I: -1, J: -1}
	for j := range nums {
		if i == j {
			continue
		}
		sum, st := snailfish.AddStats(nums[i], nums[j])
		m := snailfish.Magnitude(sum)
		best.Additions++
		best.Stats = best.Stats.Add(st)
		if best.I < 0 || m > best.Magnitude {
			best.Magnitude, best.I, best.J, best.Sum = m, i, j, sum
		}
	}
	return best
}

// Solve computes the sum and the best pair of nums.
func Solve(nums []*ir.Number, opts ...SearchOption) (Report, error) {
	sum, st, err := Sum(nums)
	if err != nil {
		return Report{}, err
	}
	best, err := MaxPair(nums, opts...)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Numbers:      len(nums),
		SumMagnitude: snailfish.Magnitude(sum),
		SumStats:     st,
		Max:          best,
		Sum:          sum,
	}, nil
}
