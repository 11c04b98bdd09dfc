package rewrite

import (
	"testing"

	"github.com/symfold/symfold/ir"
)

func TestReduce(t *testing.T) {
	x := ir.FromSymbol("x")
	a, b := ir.FromSymbol("a"), ir.FromSymbol("b")
	tests := []struct {
		name string
		node *ir.Node
		want *ir.Node
	}{
		{"terminal", ir.FromInt(7), ir.FromInt(7)},
		{"x + x",
			ir.SumOf(x, x.Clone()),
			ir.ProductOf(ir.FromInt(2), x.Clone())},
		{"1 + x + 1",
			ir.SumOf(ir.FromInt(1), x.Clone(), ir.FromInt(1)),
			ir.SumOf(ir.FromInt(2), x.Clone())},
		{"numeric run folds",
			ir.SumOf(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
			ir.FromInt(6)},
		{"x * x",
			ir.ProductOf(x.Clone(), x.Clone()),
			ir.PowOf(x.Clone(), ir.FromInt(2))},
		{"zero absorbs",
			ir.ProductOf(ir.FromInt(0), x.Clone(), ir.FromSymbol("y")),
			ir.FromInt(0)},
		{"x ^ 0",
			ir.PowOf(x.Clone(), ir.FromInt(0)),
			ir.FromInt(1)},
		{"cancelling cubics",
			ir.SumOf(
				ir.ProductOf(ir.FromInt(2), ir.PowOf(x.Clone(), ir.FromInt(3))),
				ir.ProductOf(ir.FromInt(-1), ir.ProductOf(ir.FromInt(2), ir.PowOf(x.Clone(), ir.FromInt(3))))),
			ir.FromInt(0)},
		{"nested reduction",
			ir.SumOf(ir.SumOf(x.Clone(), x.Clone()), ir.ProductOf(ir.FromInt(3), x.Clone())),
			ir.ProductOf(ir.FromInt(5), x.Clone())},
		{"binomial square",
			Expand(ir.PowOf(ir.SumOf(a, b), ir.FromInt(2))),
			ir.SumOf(
				ir.PowOf(a.Clone(), ir.FromInt(2)),
				ir.ProductOf(ir.FromInt(2), b.Clone(), a.Clone()),
				ir.PowOf(b.Clone(), ir.FromInt(2)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.node); !ir.Eq(got, tt.want) {
				t.Errorf("Reduce() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Reduce runs children first, so a sum of sums flattens before the
// pairwise pass and distant like terms still meet.
func TestReduceFlattensFirst(t *testing.T) {
	x := ir.FromSymbol("x")
	n := &ir.Node{Type: ir.SumType, Values: []*ir.Node{
		ir.FromInt(1),
		{Type: ir.SumType, Values: []*ir.Node{x, ir.FromInt(2)}},
	}}
	got := Reduce(n)
	want := ir.SumOf(ir.FromInt(3), x.Clone())
	if !ir.Eq(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestReduceIdempotent(t *testing.T) {
	x := ir.FromSymbol("x")
	samples := []*ir.Node{
		ir.SumOf(x, x.Clone(), ir.FromInt(1)),
		ir.ProductOf(ir.FromInt(2), ir.SumOf(x.Clone(), ir.FromInt(2))),
		Expand(ir.PowOf(ir.SumOf(ir.FromSymbol("a"), ir.FromSymbol("b")), ir.FromInt(2))),
		ir.ProductOf(x.Clone(), ir.PowOf(x.Clone(), ir.FromInt(-1))),
	}
	for _, s := range samples {
		once := Reduce(s)
		if twice := Reduce(once); !ir.Eq(once, twice) {
			t.Errorf("Reduce(Reduce(%v)) = %v, want %v", s, twice, once)
		}
	}
}

func TestReduceMonotone(t *testing.T) {
	x := ir.FromSymbol("x")
	samples := []*ir.Node{
		ir.FromInt(3),
		ir.SumOf(x, x.Clone()),
		ir.SumOf(ir.ProductOf(ir.FromInt(2), x.Clone()), ir.FromSymbol("y")),
		ir.PowOf(x.Clone(), ir.FromInt(0)),
		Expand(ir.PowOf(ir.SumOf(ir.FromSymbol("a"), ir.FromSymbol("b")), ir.FromInt(2))),
	}
	for _, s := range samples {
		before := s.Size()
		if after := Reduce(s).Size(); after > before {
			t.Errorf("Reduce grew %v from %d to %d", s, before, after)
		}
	}
}

// The pairwise pass is greedy and left-to-right, so operand order can
// pick which merge happens. Both orders must still reduce the size.
func TestReduceOrderSensitivity(t *testing.T) {
	x := ir.FromSymbol("x")
	fwd := Reduce(ir.SumOf(ir.FromInt(1), ir.FromInt(1), x))
	rev := Reduce(ir.SumOf(x.Clone(), ir.FromInt(1), ir.FromInt(1)))
	if !ir.Eq(fwd, ir.SumOf(ir.FromInt(2), x.Clone())) {
		t.Errorf("forward = %v, want 2 + x", fwd)
	}
	if !ir.Eq(rev, ir.SumOf(x.Clone(), ir.FromInt(2))) {
		t.Errorf("reverse = %v, want x + 2", rev)
	}
	if !ir.Eq(fwd, rev) {
		t.Errorf("the two orders disagree structurally only in ordering")
	}
}
