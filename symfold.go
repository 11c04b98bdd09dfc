// Package symfold is a small symbolic-expression engine. It represents
// arithmetic expressions over exact rationals, symbols, sums, products,
// and integer powers as trees, and rewrites them: Reduce normalizes via
// greedy pairwise merging, Expand applies the distributive law, Equal
// tests commutative/associative equivalence, and String renders text.
//
// This package is a facade over ir, rewrite, and encode; embedding layers
// such as the sf command and the eval parser build on the same packages.
package symfold

import (
	"github.com/symfold/symfold/encode"
	"github.com/symfold/symfold/ir"
	"github.com/symfold/symfold/rewrite"
)

// Convert turns a raw value into a Node per ir.Convert.
func Convert(v any) (*ir.Node, error) {
	return ir.Convert(v)
}

func IsNode(v any) bool {
	return ir.IsNode(v)
}

// Add sums its operands, converting raw values as needed.
func Add(vs ...any) (*ir.Node, error) {
	ns, err := convertAll(vs)
	if err != nil {
		return nil, err
	}
	return ir.SumOf(ns...), nil
}

// Sub builds x + (-1 * y).
func Sub(x, y any) (*ir.Node, error) {
	xn, err := ir.Convert(x)
	if err != nil {
		return nil, err
	}
	yn, err := Neg(y)
	if err != nil {
		return nil, err
	}
	return ir.SumOf(xn, yn), nil
}

// Neg builds -1 * v.
func Neg(v any) (*ir.Node, error) {
	n, err := ir.Convert(v)
	if err != nil {
		return nil, err
	}
	return ir.ProductOf(ir.FromInt(-1), n), nil
}

// Mul multiplies its operands.
func Mul(vs ...any) (*ir.Node, error) {
	ns, err := convertAll(vs)
	if err != nil {
		return nil, err
	}
	return ir.ProductOf(ns...), nil
}

// Div builds x * y^-1; the quotient stays structural until reduced.
func Div(x, y any) (*ir.Node, error) {
	xn, err := ir.Convert(x)
	if err != nil {
		return nil, err
	}
	yn, err := ir.Convert(y)
	if err != nil {
		return nil, err
	}
	return ir.ProductOf(xn, ir.PowOf(yn, ir.FromInt(-1))), nil
}

// Pow builds x^y.
func Pow(x, y any) (*ir.Node, error) {
	xn, err := ir.Convert(x)
	if err != nil {
		return nil, err
	}
	yn, err := ir.Convert(y)
	if err != nil {
		return nil, err
	}
	return ir.PowOf(xn, yn), nil
}

func Reduce(n *ir.Node) *ir.Node {
	return rewrite.Reduce(n)
}

func Expand(n *ir.Node) *ir.Node {
	return rewrite.Expand(n)
}

// Equal converts both values as needed, reduces them, and compares
// structurally.
func Equal(x, y any) (bool, error) {
	xn, err := ir.Convert(x)
	if err != nil {
		return false, err
	}
	yn, err := ir.Convert(y)
	if err != nil {
		return false, err
	}
	return rewrite.Equal(xn, yn), nil
}

func String(n *ir.Node) string {
	return encode.MustString(n)
}

func Size(n *ir.Node) int {
	return n.Size()
}

func convertAll(vs []any) ([]*ir.Node, error) {
	ns := make([]*ir.Node, len(vs))
	for i, v := range vs {
		n, err := ir.Convert(v)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
