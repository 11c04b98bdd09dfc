package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ToAny converts a node into the generic map/slice form shared by the
// JSON and YAML renditions of the IR.
func ToAny(n *Node) any {
	switch n.Type {
	case NumberType:
		return map[string]any{"type": n.Type.String(), "value": n.Num.RatString()}
	case SymbolType:
		return map[string]any{"type": n.Type.String(), "name": n.Sym}
	}
	vs := make([]any, len(n.Values))
	for i, v := range n.Values {
		vs[i] = ToAny(v)
	}
	return map[string]any{"type": n.Type.String(), "values": vs}
}

// FromAny rebuilds a node from the generic form produced by ToAny.
func FromAny(v any) (*Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrConversion, v)
	}
	ts, ok := m["type"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing type", ErrConversion)
	}
	var t Type
	if err := t.UnmarshalText([]byte(ts)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	switch t {
	case NumberType:
		return numFromAny(m["value"])
	case SymbolType:
		name, ok := m["name"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: symbol needs a name", ErrConversion)
		}
		return FromSymbol(name), nil
	}
	kids, ok := m["values"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs values", ErrConversion, t)
	}
	res := &Node{Type: t}
	res.Values = make([]*Node, len(kids))
	for i, k := range kids {
		kn, err := FromAny(k)
		if err != nil {
			return nil, err
		}
		res.Values[i] = kn
	}
	if t == PowerType && len(res.Values) != 2 {
		return nil, fmt.Errorf("%w: power needs base and exponent", ErrConversion)
	}
	return res, nil
}

func numFromAny(v any) (*Node, error) {
	switch v := v.(type) {
	case string:
		r, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, fmt.Errorf("%w: bad number %q", ErrConversion, v)
		}
		return FromBigRat(r), nil
	case float64:
		return Convert(v)
	case int:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint64:
		return FromInt(int64(v)), nil
	}
	return nil, fmt.Errorf("%w: bad number payload %T", ErrConversion, v)
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(n))
}

func (n *Node) UnmarshalJSON(d []byte) error {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	nn, err := FromAny(v)
	if err != nil {
		return err
	}
	*n = *nn
	return nil
}
