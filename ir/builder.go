package ir

// Builder assembles a Number bottom-up, as a parser does, without copying
// subtrees on every pair.
type Builder struct {
	n Number
}

func (b *Builder) Literal(v int) NodeID {
	if v < 0 {
		contractf("negative literal %d", v)
	}
	return b.n.alloc(node{typ: LiteralType, value: v, left: NoNode, right: NoNode, parent: NoNode})
}

func (b *Builder) Pair(l, r NodeID) NodeID {
	if l == r || b.n.at(l).parent != NoNode || b.n.at(r).parent != NoNode {
		contractf("pair of attached nodes %d, %d", l, r)
	}
	id := b.n.alloc(node{typ: PairType, left: l, right: r, parent: NoNode})
	b.n.nodes[l].parent = id
	b.n.nodes[r].parent = id
	return id
}

// Number finishes the build with root as the root node and resets the
// builder. Nodes not reachable from root are dropped.
func (b *Builder) Number(root NodeID) *Number {
	if b.n.at(root).parent != NoNode {
		contractf("root %d has a parent", root)
	}
	res := &Number{nodes: b.n.nodes, free: b.n.free, root: root}
	b.n = Number{}
	count := 0
	res.Walk(func(NodeID, int) bool {
		count++
		return true
	})
	if count != res.Len() {
		return res.Clone()
	}
	return res
}
