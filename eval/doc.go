// Package eval evaluates expressions over snailfish numbers.
//
// Expressions use the expr language (github.com/expr-lang/expr). The input
// numbers are bound to n, and + between two numbers is snailfish addition:
//
//	mag(n[0] + n[1])
//	str(reduce(parse("[[[[[9,8],1],2],3],4]")))
//	mag(sum(n))
//	max(mag(n[0] + n[1]), mag(n[1] + n[0]))
//
// Functions:
//
//   - add(a, b): the reduced sum [a,b], same as a + b
//   - mag(a): magnitude
//   - reduce(a): a reduced copy of a
//   - stable(a): whether a is already reduced
//   - depth(a): depth of the deepest node
//   - sum(list): left-to-right sum of a list of numbers
//   - parse(s): the number written as s
//   - str(a): the text of a
//
// Numbers given to an expression are never modified.
package eval
