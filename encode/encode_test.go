package encode

import (
	"bytes"
	"testing"

	"github.com/symfold/symfold/ir"
)

func TestMustString(t *testing.T) {
	x, y := ir.FromSymbol("x"), ir.FromSymbol("y")
	a, b := ir.FromSymbol("a"), ir.FromSymbol("b")
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"integer", ir.FromInt(5), "5"},
		{"negative integer", ir.FromInt(-3), "-3"},
		{"rational", ir.FromRat(1, 2), "1/2"},
		{"symbol", x, "x"},

		{"implicit coefficient", ir.ProductOf(ir.FromInt(2), x.Clone()), "2x"},
		{"coefficient word", ir.ProductOf(ir.FromInt(2), b.Clone(), a.Clone()), "2ba"},
		{"symbol run", ir.ProductOf(x.Clone(), y.Clone()), "xy"},
		{"numeric factors keep the star", ir.ProductOf(ir.FromInt(2), ir.FromInt(3)), "2 * 3"},
		{"inverted numeric factor",
			ir.ProductOf(ir.FromInt(10), ir.PowOf(ir.FromInt(4), ir.FromInt(-1))),
			"10 * 4^-1"},
		{"negative unit coefficient", ir.ProductOf(ir.FromInt(-1), x.Clone()), "-x"},
		{"negative trailing factor",
			ir.ProductOf(x.Clone(), ir.FromInt(-2)), "x * (-2)"},
		{"parenthesized sum factor",
			ir.ProductOf(ir.FromInt(2), ir.SumOf(x.Clone(), ir.FromInt(1))),
			"2(x + 1)"},

		{"sum", ir.SumOf(ir.FromInt(2), x.Clone()), "2 + x"},
		{"subtraction join", ir.SumOf(x.Clone(), ir.FromInt(-3)), "x - 3"},
		{"negative product term",
			ir.SumOf(ir.PowOf(x.Clone(), ir.FromInt(2)), ir.ProductOf(ir.FromInt(-2), y.Clone())),
			"x^2 - 2y"},
		{"negative unit term",
			ir.SumOf(x.Clone(), ir.ProductOf(ir.FromInt(-1), y.Clone())),
			"x - y"},
		{"leading negative term",
			ir.SumOf(ir.ProductOf(ir.FromInt(-1), x.Clone()), y.Clone()),
			"-x + y"},

		{"power", ir.PowOf(x.Clone(), ir.FromInt(3)), "x^3"},
		{"negative exponent", ir.PowOf(x.Clone(), ir.FromInt(-1)), "x^-1"},
		{"composite base",
			ir.PowOf(ir.SumOf(a.Clone(), b.Clone()), ir.FromInt(2)),
			"(a + b)^2"},
		{"composite exponent",
			ir.PowOf(x.Clone(), ir.SumOf(a.Clone(), ir.FromInt(1))),
			"x^(a + 1)"},

		{"binomial square reduced",
			ir.SumOf(
				ir.PowOf(a.Clone(), ir.FromInt(2)),
				ir.ProductOf(ir.FromInt(2), b.Clone(), a.Clone()),
				ir.PowOf(b.Clone(), ir.FromInt(2))),
			"a^2 + 2ba + b^2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node); got != tt.want {
				t.Errorf("MustString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustStringExplicit(t *testing.T) {
	x := ir.FromSymbol("x")
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"coefficient", ir.ProductOf(ir.FromInt(2), x), "2 * x"},
		{"negative unit coefficient", ir.ProductOf(ir.FromInt(-1), x.Clone()), "-1 * x"},
		{"sum factor",
			ir.ProductOf(ir.FromInt(2), ir.SumOf(x.Clone(), ir.FromInt(1))),
			"2 * (x + 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node, EncodeExplicitProducts(true)); got != tt.want {
				t.Errorf("MustString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(ir.FromInt(1), &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := buf.String(); got != "1\n" {
		t.Errorf("Encode() = %q, want %q", got, "1\n")
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	n := ir.ProductOf(ir.FromInt(2), ir.PowOf(ir.FromSymbol("x"), ir.FromInt(3)))
	if err := Dump(n, &buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	want := `Product
  Number 2
  Power
    Symbol x
    Number 3
`
	if got := buf.String(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDumpIndent(t *testing.T) {
	var buf bytes.Buffer
	n := ir.SumOf(ir.FromInt(1), ir.FromSymbol("x"))
	if err := Dump(n, &buf, Indent(4)); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	want := "Sum\n    Number 1\n    Symbol x\n"
	if got := buf.String(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestColorsPassThrough(t *testing.T) {
	// With colors wired in, the rendered text still contains the same
	// characters; escapes only wrap them.
	n := ir.ProductOf(ir.FromInt(2), ir.FromSymbol("x"))
	got := MustString(n, EncodeColors(NewColors()))
	if !bytes.Contains([]byte(got), []byte("2")) || !bytes.Contains([]byte(got), []byte("x")) {
		t.Errorf("colored output %q lost its literals", got)
	}
}
