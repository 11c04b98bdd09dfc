// Package eval is the embedding layer between arithmetic text and the
// core tree types. It parses source with the expr-lang parser and maps
// the resulting AST onto ir nodes; the core itself does no parsing.
package eval

import (
	"fmt"
	"math/big"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/symfold/symfold/ir"
)

// Parse converts arithmetic source text into an expression tree.
// Supported syntax: numbers, identifiers, unary minus, and the binary
// operators + - * / ^ (and **). Subtraction becomes addition of a negated
// operand; division becomes multiplication by an inverted one.
func Parse(src string) (*ir.Node, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	return fromAST(tree.Node)
}

func fromAST(n ast.Node) (*ir.Node, error) {
	switch n := n.(type) {
	case *ast.IntegerNode:
		return ir.FromInt(int64(n.Value)), nil
	case *ast.FloatNode:
		r := new(big.Rat).SetFloat64(n.Value)
		if r == nil {
			return nil, fmt.Errorf("%w: non-finite literal", ir.ErrConversion)
		}
		return ir.FromBigRat(r), nil
	case *ast.IdentifierNode:
		return ir.FromSymbol(n.Value), nil
	case *ast.UnaryNode:
		c, err := fromAST(n.Node)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "-":
			return ir.ProductOf(ir.FromInt(-1), c), nil
		case "+":
			return c, nil
		}
		return nil, fmt.Errorf("%w: unary operator %q", ir.ErrConversion, n.Operator)
	case *ast.BinaryNode:
		l, err := fromAST(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := fromAST(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "+":
			return ir.SumOf(l, r), nil
		case "-":
			return ir.SumOf(l, ir.ProductOf(ir.FromInt(-1), r)), nil
		case "*":
			return ir.ProductOf(l, r), nil
		case "/":
			return ir.ProductOf(l, ir.PowOf(r, ir.FromInt(-1))), nil
		case "^", "**":
			return ir.PowOf(l, r), nil
		}
		return nil, fmt.Errorf("%w: binary operator %q", ir.ErrConversion, n.Operator)
	}
	return nil, fmt.Errorf("%w: unsupported syntax %T", ir.ErrConversion, n)
}
