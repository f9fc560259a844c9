// Package ir provides the in-memory representation of snailfish numbers.
//
// # Overview
//
// A snailfish number is a binary tree. Every node is either a literal,
// holding a non-negative integer, or a pair, holding exactly two children.
// Text such as `[[1,2],3]` is turned into a Number by package parse and
// back into text by package encode.
//
// # Arena Layout
//
// A Number stores its nodes in a flat slice and refers to them with NodeID
// handles. Each node records the handle of its parent so that navigation
// can climb the tree, but the parent handle is only data: the Number alone
// owns its nodes. Collapsing a pair releases the slots of its children to
// a free list that later expansions reuse.
//
//	n := ir.Pair(ir.Literal(1), ir.Literal(2)) // [1,2]
//	root := n.Root()
//	l := n.Left(root)
//	n.Value(l) // 1
//
// Handles are only valid for the Number that produced them and only until
// the node they name is released.
//
// # Navigating Nodes
//
//   - Left, Right, Parent: direct links
//   - Depth: number of pairs above a node, the root has depth 0
//   - Walk, WalkFrom: pre-order traversal with depth
//   - Literals: literals in left-to-right order
//   - PrevLiteral, NextLiteral: nearest literal outside a subtree, found by
//     climbing to the first ancestor with a sibling on the needed side and
//     descending to that sibling's rightmost or leftmost leaf
//
// # Mutation
//
// SetValue, AddValue, Collapse and Expand modify a Number in place. They are
// the primitives used by package reduce. Misuse, such as asking for the
// value of a pair, is a programming error and panics with ErrContract.
//
// # Copying
//
// Clone returns an independent copy with a compacted arena. Pair moves its
// operands into the result; callers that need to keep an operand should
// pass a clone.
//
// # Thread Safety
//
// Read-only methods never modify a Number, so one Number may be read by
// many goroutines at once. Mutation requires exclusive access.
//
// # Related Packages
//
//   - github.com/tplews98/snailfish/parse - Parses text into numbers
//   - github.com/tplews98/snailfish/encode - Encodes numbers to text
//   - github.com/tplews98/snailfish/reduce - Explode and split reduction
package ir
