// Package search answers the two questions asked of a list of snailfish
// numbers: the magnitude of their left-to-right sum, and the largest
// magnitude of the sum of any two different numbers of the list.
//
// The numbers passed in are only read. Every addition works on its own
// copies, so the pairwise search can run on several goroutines; see
// Workers. The result does not depend on the number of workers.
package search
