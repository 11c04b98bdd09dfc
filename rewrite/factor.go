package rewrite

import (
	"fmt"

	"github.com/symfold/symfold/debug"
	"github.com/symfold/symfold/ir"
)

// FindCommon matches each child of x against the children of y using
// structural equality, removing the first match found. It returns the
// multiset of removed common children plus both remainders. Matching is
// order-insensitive and greedy; the first match wins, which under rare
// orderings misses a factor a different match order would find. Both
// arguments must be composites of the same kind.
func FindCommon(x, y *ir.Node) (common, restX, restY []*ir.Node, err error) {
	if x.Type.IsLeaf() || y.Type.IsLeaf() || x.Type != y.Type {
		return nil, nil, nil, fmt.Errorf(
			"%w: common-factor search needs two composites of one kind, got %s and %s",
			ir.ErrPrecond, x.Type, y.Type)
	}
	restY = make([]*ir.Node, len(y.Values))
	for i, v := range y.Values {
		restY[i] = v.Clone()
	}
	for _, v := range x.Values {
		c := v.Clone()
		found := -1
		for i, w := range restY {
			if ir.Eq(c, w) {
				found = i
				break
			}
		}
		if found < 0 {
			restX = append(restX, c)
			continue
		}
		common = append(common, c)
		restY = append(restY[:found], restY[found+1:]...)
	}
	return common, restX, restY, nil
}

// factorOutSum extracts a common multiplicative factor from two sum
// operands, each viewed as a product. The common multiset is collected in
// the order of the right operand's factors, which fixes the published
// term order of results like 2ba. Acceptance requires the remainder sum
// to reduce strictly smaller than its raw form.
func factorOutSum(a, b *ir.Node) (*ir.Node, bool) {
	pa, pb := asProduct(a), asProduct(b)
	common, restB, restA, err := FindCommon(pb, pa)
	if err != nil || !usefulCommon(common) {
		return nil, false
	}
	cand := &ir.Node{Type: ir.SumType}
	cand.Append(productOrOne(restA))
	cand.Append(productOrOne(restB))
	red := Reduce(cand)
	if red.Size() >= cand.Size() {
		return nil, false
	}
	res := &ir.Node{Type: ir.ProductType}
	res.Append(red)
	res.Append(ir.ProductOf(common...))
	if debug.Factor() {
		debug.Logf("factor: shared %d multiplicative factor(s)\n", len(common))
	}
	return Reduce(res), true
}

// factorOutPower merges two product operands sharing a structurally equal
// base, each viewed as a power. The merged exponent is the reduced sum of
// the exponents, accepted only when strictly smaller than the raw sum.
func factorOutPower(a, b *ir.Node) (*ir.Node, bool) {
	pa, pb := asPower(a), asPower(b)
	if !ir.Eq(pa.Values[0], pb.Values[0]) {
		return nil, false
	}
	raw := &ir.Node{Type: ir.SumType}
	raw.Append(pa.Values[1].Clone())
	raw.Append(pb.Values[1].Clone())
	exp := Reduce(raw)
	if exp.Size() >= raw.Size() {
		return nil, false
	}
	if debug.Factor() {
		debug.Logf("factor: merged exponents over a shared base\n")
	}
	return Reduce(ir.PowOf(pa.Values[0].Clone(), exp)), true
}

// usefulCommon rejects a common multiset holding nothing but the literal
// 1: every pair of wrapped operands trivially shares it, and factoring it
// out would rebuild the input and recurse without end.
func usefulCommon(common []*ir.Node) bool {
	for _, c := range common {
		if !c.IsOne() {
			return true
		}
	}
	return false
}

func asProduct(n *ir.Node) *ir.Node {
	if n.Type == ir.ProductType {
		return n
	}
	return &ir.Node{Type: ir.ProductType, Values: []*ir.Node{ir.FromInt(1), n}}
}

func asPower(n *ir.Node) *ir.Node {
	if n.Type == ir.PowerType {
		return n
	}
	return ir.PowOf(n, ir.FromInt(1))
}

func productOrOne(kids []*ir.Node) *ir.Node {
	if len(kids) == 0 {
		return ir.FromInt(1)
	}
	return ir.ProductOf(kids...)
}
