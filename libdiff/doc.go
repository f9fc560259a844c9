// Package libdiff computes character level differences between the text of
// two snailfish numbers, typically a number before and after one reduction
// step.
package libdiff
