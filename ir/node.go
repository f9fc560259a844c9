package ir

// NodeID addresses a node inside the arena of a single Number. Handles are
// only meaningful for the Number that issued them.
type NodeID int32

// NoNode is returned by navigation functions when there is no such node.
const NoNode NodeID = -1

type node struct {
	typ    Type
	value  int
	left   NodeID
	right  NodeID
	parent NodeID
	free   bool
}

// Number is a binary tree of literals and pairs stored in a flat arena.
// The arena owns every node; parent links are plain handles.
type Number struct {
	nodes []node
	free  []NodeID
	root  NodeID
}

func Literal(v int) *Number {
	if v < 0 {
		contractf("negative literal %d", v)
	}
	return &Number{
		nodes: []node{{typ: LiteralType, value: v, left: NoNode, right: NoNode, parent: NoNode}},
		root:  0,
	}
}

// Pair makes a new number whose left and right subtrees are taken from
// left and right. Both operands are emptied and must not be used again.
func Pair(left, right *Number) *Number {
	if left == nil || right == nil || left == right {
		contractf("pair needs two distinct operands")
	}
	left.live()
	right.live()
	res := &Number{nodes: make([]node, 1, 1+left.Len()+right.Len())}
	res.nodes[0] = node{typ: PairType, parent: NoNode}
	l := res.graft(left, left.root, 0)
	r := res.graft(right, right.root, 0)
	res.nodes[0].left = l
	res.nodes[0].right = r
	res.root = 0
	*left = Number{root: NoNode}
	*right = Number{root: NoNode}
	return res
}

func (n *Number) Clone() *Number {
	n.live()
	res := &Number{nodes: make([]node, 0, n.Len())}
	res.root = res.graft(n, n.root, NoNode)
	return res
}

// graft copies the subtree of src rooted at id into n under parent and
// returns the handle of the copy.
func (n *Number) graft(src *Number, id, parent NodeID) NodeID {
	s := &src.nodes[id]
	dst := n.alloc(node{typ: s.typ, value: s.value, left: NoNode, right: NoNode, parent: parent})
	if s.typ == PairType {
		l := n.graft(src, s.left, dst)
		r := n.graft(src, s.right, dst)
		n.nodes[dst].left = l
		n.nodes[dst].right = r
	}
	return dst
}

func (n *Number) alloc(nd node) NodeID {
	if k := len(n.free); k > 0 {
		id := n.free[k-1]
		n.free = n.free[:k-1]
		n.nodes[id] = nd
		return id
	}
	n.nodes = append(n.nodes, nd)
	return NodeID(len(n.nodes) - 1)
}

func (n *Number) release(id NodeID) {
	nd := &n.nodes[id]
	if nd.typ == PairType {
		n.release(nd.left)
		n.release(nd.right)
	}
	*nd = node{free: true, left: NoNode, right: NoNode, parent: NoNode}
	n.free = append(n.free, id)
}

func (n *Number) live() {
	if n == nil || n.root == NoNode || len(n.nodes) == 0 {
		contractf("use of an empty or consumed number")
	}
}

func (n *Number) at(id NodeID) *node {
	if id < 0 || int(id) >= len(n.nodes) || n.nodes[id].free {
		contractf("no node %d", id)
	}
	return &n.nodes[id]
}

func (n *Number) Root() NodeID {
	n.live()
	return n.root
}

// Len returns the number of nodes in the tree.
func (n *Number) Len() int {
	return len(n.nodes) - len(n.free)
}

func (n *Number) Type(id NodeID) Type {
	return n.at(id).typ
}

func (n *Number) IsLiteral(id NodeID) bool {
	return n.at(id).typ == LiteralType
}

func (n *Number) IsPair(id NodeID) bool {
	return n.at(id).typ == PairType
}

func (n *Number) Value(id NodeID) int {
	nd := n.at(id)
	if nd.typ != LiteralType {
		contractf("value of %s node %d", nd.typ, id)
	}
	return nd.value
}

func (n *Number) Left(id NodeID) NodeID {
	nd := n.at(id)
	if nd.typ != PairType {
		contractf("left of %s node %d", nd.typ, id)
	}
	return nd.left
}

func (n *Number) Right(id NodeID) NodeID {
	nd := n.at(id)
	if nd.typ != PairType {
		contractf("right of %s node %d", nd.typ, id)
	}
	return nd.right
}

func (n *Number) Parent(id NodeID) NodeID {
	return n.at(id).parent
}

// Depth returns the number of pairs above id.
func (n *Number) Depth(id NodeID) int {
	d := 0
	for p := n.at(id).parent; p != NoNode; p = n.nodes[p].parent {
		d++
	}
	return d
}

// Walk visits the tree in pre-order, left before right, passing the depth
// of each node. The walk stops as soon as f returns false, in which case
// Walk returns false.
func (n *Number) Walk(f func(id NodeID, depth int) bool) bool {
	return n.WalkFrom(n.Root(), 0, f)
}

// WalkFrom is Walk restricted to the subtree at id, which is taken to sit
// at the given depth.
func (n *Number) WalkFrom(id NodeID, depth int, f func(id NodeID, depth int) bool) bool {
	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{id: id, depth: depth}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(fr.id, fr.depth) {
			return false
		}
		nd := n.at(fr.id)
		if nd.typ == PairType {
			stack = append(stack,
				frame{id: nd.right, depth: fr.depth + 1},
				frame{id: nd.left, depth: fr.depth + 1})
		}
	}
	return true
}

// Literals returns the literal handles in left-to-right order.
func (n *Number) Literals() []NodeID {
	var res []NodeID
	n.Walk(func(id NodeID, _ int) bool {
		if n.nodes[id].typ == LiteralType {
			res = append(res, id)
		}
		return true
	})
	return res
}

// MaxDepth returns the depth of the deepest node.
func (n *Number) MaxDepth() int {
	res := 0
	n.Walk(func(_ NodeID, depth int) bool {
		res = max(res, depth)
		return true
	})
	return res
}

func (n *Number) leftmost(id NodeID) NodeID {
	for !n.at(id).typ.IsLeaf() {
		id = n.nodes[id].left
	}
	return id
}

func (n *Number) rightmost(id NodeID) NodeID {
	for !n.at(id).typ.IsLeaf() {
		id = n.nodes[id].right
	}
	return id
}

// PrevLiteral returns the literal immediately before the subtree at id in
// left-to-right order, or NoNode if the subtree starts the tree.
func (n *Number) PrevLiteral(id NodeID) NodeID {
	cur := id
	for p := n.at(id).parent; p != NoNode; cur, p = p, n.nodes[p].parent {
		if n.nodes[p].right == cur {
			return n.rightmost(n.nodes[p].left)
		}
	}
	return NoNode
}

// NextLiteral returns the literal immediately after the subtree at id in
// left-to-right order, or NoNode if the subtree ends the tree.
func (n *Number) NextLiteral(id NodeID) NodeID {
	cur := id
	for p := n.at(id).parent; p != NoNode; cur, p = p, n.nodes[p].parent {
		if n.nodes[p].left == cur {
			return n.leftmost(n.nodes[p].right)
		}
	}
	return NoNode
}

func (n *Number) SetValue(id NodeID, v int) {
	nd := n.at(id)
	if nd.typ != LiteralType || v < 0 {
		contractf("set %s node %d to %d", nd.typ, id, v)
	}
	nd.value = v
}

func (n *Number) AddValue(id NodeID, delta int) {
	n.SetValue(id, n.Value(id)+delta)
}

// Collapse replaces the pair at id with the literal v. The subtrees of the
// pair are released; their handles become invalid.
func (n *Number) Collapse(id NodeID, v int) {
	nd := n.at(id)
	if nd.typ != PairType || v < 0 {
		contractf("collapse %s node %d to %d", nd.typ, id, v)
	}
	l, r := nd.left, nd.right
	n.release(l)
	n.release(r)
	nd = &n.nodes[id]
	nd.typ = LiteralType
	nd.value = v
	nd.left = NoNode
	nd.right = NoNode
}

// Expand replaces the literal at id with the pair [l,r] and returns the
// handles of the two new literals.
func (n *Number) Expand(id NodeID, l, r int) (NodeID, NodeID) {
	nd := n.at(id)
	if nd.typ != LiteralType || l < 0 || r < 0 {
		contractf("expand %s node %d to [%d,%d]", nd.typ, id, l, r)
	}
	li := n.alloc(node{typ: LiteralType, value: l, left: NoNode, right: NoNode, parent: id})
	ri := n.alloc(node{typ: LiteralType, value: r, left: NoNode, right: NoNode, parent: id})
	nd = &n.nodes[id]
	nd.typ = PairType
	nd.value = 0
	nd.left = li
	nd.right = ri
	return li, ri
}
