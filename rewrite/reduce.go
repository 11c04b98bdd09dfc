package rewrite

import (
	"github.com/symfold/symfold/debug"
	"github.com/symfold/symfold/ir"
)

// Reduce normalizes a tree bottom-up. Children are reduced first, then a
// single left-to-right greedy pairwise pass tries to merge sibling
// operands via Combine, accepting a merge only when the combined node is
// strictly smaller than the naive two-child node it replaces. Accepted
// merges are never revisited, so the outcome can depend on child order;
// that order-sensitivity is part of the contract, not a defect.
func Reduce(n *ir.Node) *ir.Node {
	if n.Type.IsLeaf() {
		return n
	}
	// Reduced children splice through a same-kind composite before the
	// pairwise pass so that distant like terms can still meet.
	flat := &ir.Node{Type: n.Type}
	for _, v := range n.Values {
		flat.Append(Reduce(v))
	}
	kids := flat.Values
	for i := 0; i < len(kids); i++ {
		j := i + 1
		for j < len(kids) {
			naive := 1 + kids[i].Size() + kids[j].Size()
			merged := Combine(n.Type, kids[i], kids[j])
			if merged.Size() >= naive {
				j++
				continue
			}
			if debug.Reduce() {
				debug.Logf("reduce: %s pair (%d,%d) %d -> %d\n",
					n.Type, i, j, naive, merged.Size())
			}
			kids[i] = merged
			kids = append(kids[:j], kids[j+1:]...)
			// same i retried against the element that shifted into j
		}
	}
	res := &ir.Node{Type: n.Type}
	for _, k := range kids {
		res.Append(k)
	}
	if len(res.Values) == 1 {
		return res.Values[0]
	}
	return res
}
