package ir

import (
	"fmt"
	"math/big"
)

type Node struct {
	Type   Type
	Values []*Node

	Num *big.Rat
	Sym string
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Num: new(big.Rat).SetInt64(v)}
}

func FromRat(p, q int64) *Node {
	if q == 0 {
		panic("ir: denominator is zero")
	}
	return &Node{Type: NumberType, Num: new(big.Rat).SetFrac64(p, q)}
}

func FromBigRat(v *big.Rat) *Node {
	return &Node{Type: NumberType, Num: new(big.Rat).Set(v)}
}

func FromFloat(f float64) *Node {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("ir: non-finite float")
	}
	return &Node{Type: NumberType, Num: r}
}

func FromSymbol(name string) *Node {
	return &Node{Type: SymbolType, Sym: name}
}

// SumOf builds a sum over kids, splicing in same-kind children and
// collapsing a singleton to its sole element. With no kids it returns the
// transient empty sum.
func SumOf(kids ...*Node) *Node {
	return compositeOf(SumType, kids)
}

// ProductOf builds a product over kids with the same splicing and
// collapsing rules as SumOf.
func ProductOf(kids ...*Node) *Node {
	return compositeOf(ProductType, kids)
}

func compositeOf(t Type, kids []*Node) *Node {
	res := &Node{Type: t}
	for _, k := range kids {
		res.Append(k)
	}
	if len(res.Values) == 1 {
		return res.Values[0]
	}
	return res
}

// PowOf builds a power node. Powers have fixed arity two and never splice.
func PowOf(base, exp *Node) *Node {
	return &Node{Type: PowerType, Values: []*Node{base, exp}}
}

// Convert accepts a *Node (deep copied), a Go integer, a *big.Rat, a
// float64, or a symbol name, and wraps anything else in ErrConversion.
func Convert(v any) (*Node, error) {
	switch v := v.(type) {
	case *Node:
		return v.Clone(), nil
	case int:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case *big.Rat:
		return FromBigRat(v), nil
	case float64:
		r := new(big.Rat).SetFloat64(v)
		if r == nil {
			return nil, fmt.Errorf("%w: non-finite float %v", ErrConversion, v)
		}
		return &Node{Type: NumberType, Num: r}, nil
	case string:
		return FromSymbol(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported kind %T", ErrConversion, v)
}

func IsNode(v any) bool {
	_, ok := v.(*Node)
	return ok
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Sym = n.Sym
	if n.Num != nil {
		dst.Num = new(big.Rat).Set(n.Num)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Append adds child at the end of n's children, splicing in the children
// of a same-kind sum or product. Legal only while n is still under
// construction.
func (n *Node) Append(child *Node) {
	if n.spliceable(child) {
		n.Values = append(n.Values, child.Values...)
		return
	}
	n.Values = append(n.Values, child)
}

// Prepend is Append at the front.
func (n *Node) Prepend(child *Node) {
	if n.spliceable(child) {
		n.Values = append(child.Values[:len(child.Values):len(child.Values)], n.Values...)
		return
	}
	n.Values = append([]*Node{child}, n.Values...)
}

// Extend appends every child in kids.
func (n *Node) Extend(kids ...*Node) {
	for _, k := range kids {
		n.Append(k)
	}
}

func (n *Node) spliceable(child *Node) bool {
	if n.Type != SumType && n.Type != ProductType {
		return false
	}
	return child.Type == n.Type
}

func (n *Node) IsZero() bool {
	return n.Type == NumberType && n.Num.Sign() == 0
}

func (n *Node) IsOne() bool {
	return n.Type == NumberType && n.Num.Cmp(ratOne) == 0
}

func (n *Node) IsNegOne() bool {
	return n.Type == NumberType && n.Num.Cmp(ratNegOne) == 0
}

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)
