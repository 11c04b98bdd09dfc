package rewrite

import (
	"github.com/symfold/symfold/debug"
	"github.com/symfold/symfold/ir"
)

// Expand applies the distributive law to push products into sums and
// unrolls non-negative integer powers into repeated products. Terminals
// return unchanged; everything else has its children expanded first.
func Expand(n *ir.Node) *ir.Node {
	if n.Type.IsLeaf() {
		return n
	}
	res := &ir.Node{Type: n.Type}
	for _, v := range n.Values {
		res.Append(Expand(v))
	}
	if len(res.Values) == 1 {
		res = res.Values[0]
	}
	switch res.Type {
	case ir.ProductType:
		return distribute(res)
	case ir.PowerType:
		return unroll(res)
	}
	return res
}

// distribute rewrites a product holding a sum into a sum of per-term
// products. Only the first sum child is distributed over; later sums stay
// nested in the per-term products and are handled by the recursive
// expansion of each term.
func distribute(p *ir.Node) *ir.Node {
	sumAt := -1
	for i, v := range p.Values {
		if v.Type == ir.SumType {
			sumAt = i
			break
		}
	}
	if sumAt < 0 {
		return p
	}
	sum := p.Values[sumAt]
	rest := make([]*ir.Node, 0, len(p.Values)-1)
	rest = append(rest, p.Values[:sumAt]...)
	rest = append(rest, p.Values[sumAt+1:]...)
	if debug.Expand() {
		debug.Logf("expand: distributing product over %d term(s)\n", len(sum.Values))
	}
	res := &ir.Node{Type: ir.SumType}
	for _, t := range sum.Values {
		term := &ir.Node{Type: ir.ProductType}
		if len(rest) > 0 {
			term.Append(cloneProduct(rest))
		}
		term.Append(t.Clone())
		out := ir.ProductOf(term.Values...)
		res.Append(Expand(out))
	}
	if len(res.Values) == 1 {
		return res.Values[0]
	}
	return res
}

// unroll turns base^n for a non-negative integer n into a product of n
// copies of the base, then distributes it. Other exponents are left
// alone.
func unroll(p *ir.Node) *ir.Node {
	exp := p.Values[1]
	if exp.Type != ir.NumberType || !exp.Num.IsInt() || exp.Num.Sign() < 0 {
		return p
	}
	k := exp.Num.Num().Int64()
	if k == 0 {
		return ir.FromInt(1)
	}
	res := &ir.Node{Type: ir.ProductType}
	for i := int64(0); i < k; i++ {
		res.Append(p.Values[0].Clone())
	}
	if len(res.Values) == 1 {
		return res.Values[0]
	}
	return distribute(res)
}

func cloneProduct(kids []*ir.Node) *ir.Node {
	cs := make([]*ir.Node, len(kids))
	for i, k := range kids {
		cs[i] = k.Clone()
	}
	return ir.ProductOf(cs...)
}
