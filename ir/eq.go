package ir

// Eq reports structural equivalence of two trees. Terminals compare by
// kind and literal value. Composites of the same kind compare by
// order-insensitive multiset matching: each child of a is matched against
// some remaining child of b and both are removed; the trees are equal iff
// both remainders empty out together. Eq does not normalize its
// arguments; callers comparing unreduced trees want rewrite.Equal.
func Eq(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NumberType:
		return a.Num.Cmp(b.Num) == 0
	case SymbolType:
		return a.Sym == b.Sym
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	rem := make([]*Node, len(b.Values))
	copy(rem, b.Values)
	for _, av := range a.Values {
		found := -1
		for i, bv := range rem {
			if Eq(av, bv) {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		rem = append(rem[:found], rem[found+1:]...)
	}
	return len(rem) == 0
}
