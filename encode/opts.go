package encode

type EncodeOption func(*EncState)

// EncodeExplicitProducts renders every product join with " * " instead of
// the implicit-coefficient form, e.g. "2 * x" rather than "2x".
func EncodeExplicitProducts(v bool) EncodeOption {
	return func(es *EncState) { es.explicit = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Indent sets the per-level indent used by Dump.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
