// Package reduce normalizes snailfish numbers.
//
// Two rules rewrite a number, and the leftmost applicable rule always wins,
// with explode taking priority over split:
//
//   - explode: a pair of two literals nested ir.ExplodeDepth pairs deep adds
//     its left value to the nearest literal on its left and its right value
//     to the nearest literal on its right, then becomes the literal 0
//   - split: a literal v >= ir.SplitValue becomes the pair [v/2, (v+1)/2]
//
// After every rewrite the search starts again from the root. A number to
// which no rule applies is stable; Reduce rewrites until that point.
package reduce
