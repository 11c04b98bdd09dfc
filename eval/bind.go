package eval

import "github.com/symfold/symfold/ir"

// Bind returns node with every symbol found in env replaced by a copy of
// its entry. Unbound symbols pass through. The input is not mutated.
func Bind(node *ir.Node, env map[string]*ir.Node) *ir.Node {
	if len(env) == 0 {
		return node
	}
	switch node.Type {
	case ir.SymbolType:
		if v, ok := env[node.Sym]; ok {
			return v.Clone()
		}
		return node
	case ir.NumberType:
		return node
	}
	res := &ir.Node{Type: node.Type}
	for _, v := range node.Values {
		res.Append(Bind(v, env))
	}
	if len(res.Values) == 1 {
		return res.Values[0]
	}
	return res
}
