package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/symfold/symfold/ir"
)

// Dump writes an indented multi-line sketch of the tree, one type label
// per node with its literal where it has one. Diagnostic output only; it
// is not parsed back.
func Dump(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return dump(node, w, es, 0)
}

func dump(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	pad := strings.Repeat(" ", depth*es.indent)
	label := es.color(n.Type, LabelColor, n.Type.String())
	var line string
	switch n.Type {
	case ir.NumberType:
		line = fmt.Sprintf("%s%s %s", pad, label, es.color(n.Type, ValueColor, n.Num.RatString()))
	case ir.SymbolType:
		line = fmt.Sprintf("%s%s %s", pad, label, es.color(n.Type, ValueColor, n.Sym))
	default:
		line = pad + label
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for _, v := range n.Values {
		if err := dump(v, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}
