// Package rewrite implements the engine's tree transforms: pairwise
// operand combination, common-factor extraction, greedy reduction,
// distributive expansion, and reduced equality.
package rewrite

import (
	"math/big"

	"github.com/symfold/symfold/debug"
	"github.com/symfold/symfold/ir"
)

// Combine merges two already-converted operands under op, which must be
// SumType, ProductType, or PowerType. It folds numeric operands, applies
// identity and absorbing elements, tries factorization, and otherwise
// builds a plain structural node. Inputs are never mutated; the result is
// always a fresh node.
func Combine(op ir.Type, x, y *ir.Node) *ir.Node {
	if res := fold(op, x, y); res != nil {
		return res
	}
	if res := identity(op, x, y); res != nil {
		return res
	}
	switch op {
	case ir.SumType:
		if res, ok := factorOutSum(x, y); ok {
			return res
		}
	case ir.ProductType:
		if res, ok := factorOutPower(x, y); ok {
			return res
		}
	}
	res := &ir.Node{Type: op}
	res.Append(x.Clone())
	res.Append(y.Clone())
	if debug.Combine() {
		debug.Logf("combine: %s over %s kept structural\n", op, op)
	}
	return res
}

// fold handles the both-numbers case. Powers of numbers are left
// structural; expansion unrolls them. Division never reaches this point:
// a quotient is built upstream as multiplication by an inverted operand,
// so a number-with-inverse pair is a product with a power in it, not two
// bare numbers.
func fold(op ir.Type, x, y *ir.Node) *ir.Node {
	if x.Type != ir.NumberType || y.Type != ir.NumberType {
		return nil
	}
	switch op {
	case ir.SumType:
		return ir.FromBigRat(new(big.Rat).Add(x.Num, y.Num))
	case ir.ProductType:
		return ir.FromBigRat(new(big.Rat).Mul(x.Num, y.Num))
	}
	return nil
}

func identity(op ir.Type, x, y *ir.Node) *ir.Node {
	switch op {
	case ir.SumType:
		if x.IsZero() {
			return y.Clone()
		}
		if y.IsZero() {
			return x.Clone()
		}
	case ir.ProductType:
		if x.IsZero() || y.IsZero() {
			return ir.FromInt(0)
		}
		if x.IsOne() {
			return y.Clone()
		}
		if y.IsOne() {
			return x.Clone()
		}
	case ir.PowerType:
		// x^0 is 1 by convention, even for x = 0, so the exponent check
		// comes before the base check.
		if y.IsZero() {
			return ir.FromInt(1)
		}
		if x.IsZero() {
			return ir.FromInt(0)
		}
		if x.IsOne() {
			return ir.FromInt(1)
		}
		if y.IsOne() {
			return x.Clone()
		}
	}
	return nil
}
