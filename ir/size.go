package ir

// symbolCost makes symbols three orders of magnitude heavier than numeric
// terminals, biasing rewrite acceptance toward collapsing numeric
// structure and away from duplicating symbolic sub-expressions.
const symbolCost = 1000

// Size is the cost metric used to decide whether a rewrite is an
// improvement: a symbol costs 1000, a number costs 1, and a composite
// costs 1 plus the sizes of its children.
func (n *Node) Size() int {
	switch n.Type {
	case SymbolType:
		return symbolCost
	case NumberType:
		return 1
	}
	s := 1
	for _, v := range n.Values {
		s += v.Size()
	}
	return s
}
