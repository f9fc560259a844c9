// Package snailfish implements snailfish number arithmetic.
//
// Numbers are parsed with package parse, held as ir.Number trees and
// normalized by package reduce. This package provides the two operations
// built on top of them:
//
//	a, _ := parse.ParseString("[[[[4,3],4],4],[7,[[8,4],9]]]")
//	b, _ := parse.ParseString("[1,1]")
//	sum := snailfish.Add(a, b)   // [[[[0,7],4],[[7,8],[6,0]]],[8,1]]
//	snailfish.Magnitude(sum)     // 1384
//
// Add never modifies its operands, so the same parsed number may take part
// in any number of additions, including concurrent ones. Package search
// builds the sequential sum and the best pairwise sum of a list on Add.
package snailfish
