package search

import "runtime"

type searchOpts struct {
	workers int
}

type SearchOption func(*searchOpts)

// Workers bounds the number of goroutines used by MaxPair. Values below 2
// run the search on the calling goroutine. The default is GOMAXPROCS.
func Workers(n int) SearchOption {
	return func(o *searchOpts) { o.workers = n }
}

func newOpts(opts []SearchOption) *searchOpts {
	sOpts := &searchOpts{workers: runtime.GOMAXPROCS(0)}
	for _, f := range opts {
		f(sOpts)
	}
	return sOpts
}
