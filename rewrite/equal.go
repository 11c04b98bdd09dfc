package rewrite

import "github.com/symfold/symfold/ir"

// Equal reduces both sides and compares the results with the
// order-insensitive structural equality of ir.Eq.
func Equal(x, y *ir.Node) bool {
	return ir.Eq(Reduce(x), Reduce(y))
}
