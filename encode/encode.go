// Package encode renders expression trees as text. The default form uses
// implicit coefficients (2x, -ba) and subtraction joins; an option
// switches to explicit " * " products. Dump writes the diagnostic
// indented tree form.
package encode

import (
	"io"
	"strings"

	"github.com/symfold/symfold/ir"
)

type EncState struct {
	explicit bool
	indent   int

	Color func(ir.Type, ColorAttr, string) string
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

// Encode writes the textual form of node to w, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	_, err := io.WriteString(w, render(node, es)+"\n")
	return err
}

func render(n *ir.Node, es *EncState) string {
	switch n.Type {
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, n.Num.RatString())
	case ir.SymbolType:
		return es.color(ir.SymbolType, ValueColor, n.Sym)
	case ir.SumType:
		return renderSum(n, es)
	case ir.ProductType:
		return renderProduct(n, es)
	case ir.PowerType:
		return renderPower(n, es)
	}
	return ""
}

func renderSum(n *ir.Node, es *EncState) string {
	var sb strings.Builder
	for i, t := range n.Values {
		if i == 0 {
			sb.WriteString(render(t, es))
			continue
		}
		if pos, ok := stripNeg(t); ok {
			sb.WriteString(es.color(ir.SumType, SepColor, " - "))
			sb.WriteString(render(pos, es))
			continue
		}
		sb.WriteString(es.color(ir.SumType, SepColor, " + "))
		sb.WriteString(render(t, es))
	}
	return sb.String()
}

// stripNeg reports whether t is a negative term (a negative number, or a
// product led by one) and returns it with the leading minus removed, so a
// sum can join it with " - " without doubling the sign.
func stripNeg(t *ir.Node) (*ir.Node, bool) {
	switch {
	case t.Type == ir.NumberType && t.Num.Sign() < 0:
		pos := t.Clone()
		pos.Num.Neg(pos.Num)
		return pos, true
	case t.Type == ir.ProductType && len(t.Values) > 0 &&
		t.Values[0].Type == ir.NumberType && t.Values[0].Num.Sign() < 0:
		first := t.Values[0].Clone()
		first.Num.Neg(first.Num)
		rest := make([]*ir.Node, 0, len(t.Values))
		if !first.IsOne() || len(t.Values) == 1 {
			rest = append(rest, first)
		}
		for _, v := range t.Values[1:] {
			rest = append(rest, v.Clone())
		}
		return ir.ProductOf(rest...), true
	}
	return nil, false
}

func renderProduct(n *ir.Node, es *EncState) string {
	var sb strings.Builder
	bare := false
	for i, f := range n.Values {
		if i == 0 && !es.explicit && f.IsNegOne() &&
			len(n.Values) > 1 && n.Values[1].Type != ir.NumberType {
			// a coefficient of exactly -1 renders as a bare minus sign
			sb.WriteString(es.color(ir.ProductType, SepColor, "-"))
			bare = true
			continue
		}
		s := render(f, es)
		if f.Type == ir.SumType || (i > 0 && f.Type == ir.NumberType && f.Num.Sign() < 0) {
			s = "(" + s + ")"
		}
		if i > 0 && !bare {
			if es.explicit || startsNumeric(f) {
				sb.WriteString(es.color(ir.ProductType, SepColor, " * "))
			}
		}
		bare = false
		sb.WriteString(s)
	}
	return sb.String()
}

// startsNumeric reports whether a factor's rendering opens with a digit
// or sign, in which case juxtaposition would be ambiguous and the " * "
// separator is kept even in implicit mode.
func startsNumeric(f *ir.Node) bool {
	switch f.Type {
	case ir.NumberType:
		return true
	case ir.PowerType:
		return f.Values[0].Type == ir.NumberType
	case ir.ProductType:
		return len(f.Values) > 0 && startsNumeric(f.Values[0])
	}
	return false
}

func renderPower(n *ir.Node, es *EncState) string {
	base, exp := n.Values[0], n.Values[1]
	bs := render(base, es)
	if !base.Type.IsLeaf() {
		bs = "(" + bs + ")"
	}
	xs := render(exp, es)
	if !exp.Type.IsLeaf() {
		xs = "(" + xs + ")"
	}
	return bs + es.color(ir.PowerType, SepColor, "^") + xs
}
