// Package ir provides the tree representation for symbolic arithmetic
// expressions.
//
// # Node Structure
//
// A Node represents a single value in an expression. Nodes are either
// terminals (numbers, symbols) or composites (sums, products, powers).
// The IR works as a recursive tagged union structure, where payloads are
// placed in fields depending on the node type:
//
//   - NumberType: an exact rational in Num
//   - SymbolType: a variable name in Sym
//   - SumType, ProductType: ordered children in Values
//   - PowerType: exactly two children in Values, base then exponent
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	two := ir.FromInt(2)
//	x := ir.FromSymbol("x")
//	sum := ir.SumOf(two, x)
//	pow := ir.PowOf(x, ir.FromInt(3))
//
// Convert accepts a *Node (deep copied), a Go integer, a *big.Rat, a
// float64, or a string symbol name, and fails with ErrConversion for
// anything else.
//
// # IR Structure Constraints
//
// Sums and products never hold exactly one child: SumOf and ProductOf
// collapse a singleton to its sole element. A zero-child sum or product is
// a valid identity placeholder only while a rewrite is assembling a node;
// it never appears in a published result.
//
// Appending a node of the same kind into a sum or product splices its
// children in rather than nesting it, so same-operator chains stay
// maximally flat. Children keep insertion order; nothing in this package
// sorts them, and Eq works under arbitrary orderings.
//
// # Mutation and Ownership
//
// Append, Prepend, and Extend mutate the receiver in place. They are only
// legal on a node that has not yet been handed to a caller; once a node is
// returned as a result it is immutable and may be freely shared.
package ir
