package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Reduce bool
	Steps  bool
	Search bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SNAIL_DEBUG_PARSE")
	d.Reduce = boolEnv("SNAIL_DEBUG_REDUCE")
	d.Steps = boolEnv("SNAIL_DEBUG_STEPS")
	d.Search = boolEnv("SNAIL_DEBUG_SEARCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Reduce() bool {
	return d.Reduce
}

// Steps reports whether every explode and split should be logged.
func Steps() bool {
	return d.Steps
}
func Search() bool {
	return d.Search
}
