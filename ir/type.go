package ir

import "fmt"

type Type int

const (
	NumberType Type = iota
	SymbolType
	SumType
	ProductType
	PowerType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NumberType:  "Number",
		SymbolType:  "Symbol",
		SumType:     "Sum",
		ProductType: "Product",
		PowerType:   "Power",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Number":  NumberType,
		"Symbol":  SymbolType,
		"Sum":     SumType,
		"Product": ProductType,
		"Power":   PowerType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NumberType,
		SymbolType,
		SumType,
		ProductType,
		PowerType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case NumberType, SymbolType:
		return true
	default:
		return false
	}
}
