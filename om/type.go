package om

import "fmt"

type Type int

const (
	IntegerType Type = iota
	FloatType
	StringType
	BytesType
	SymbolType
	VariableType
	ApplicationType
	AttributionType
	BindingType
	ErrorType
	ReferenceType
	ForeignType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		IntegerType:     "Integer",
		FloatType:       "Float",
		StringType:      "String",
		BytesType:       "Bytes",
		SymbolType:      "Symbol",
		VariableType:    "Variable",
		ApplicationType: "Application",
		AttributionType: "Attribution",
		BindingType:     "Binding",
		ErrorType:       "Error",
		ReferenceType:   "Reference",
		ForeignType:     "Foreign",
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
		"Integer":     IntegerType,
		"Float":       FloatType,
		"String":      StringType,
		"Bytes":       BytesType,
		"Symbol":      SymbolType,
		"Variable":    VariableType,
		"Application": ApplicationType,
		"Attribution": AttributionType,
		"Binding":     BindingType,
		"Error":       ErrorType,
		"Reference":   ReferenceType,
		"Foreign":     ForeignType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		IntegerType,
		FloatType,
		StringType,
		BytesType,
		SymbolType,
		VariableType,
		ApplicationType,
		AttributionType,
		BindingType,
		ErrorType,
		ReferenceType,
		ForeignType,
	}
}

// IsLeaf reports whether nodes of this type carry no child nodes.
func (t Type) IsLeaf() bool {
	switch t {
	case ApplicationType, AttributionType, BindingType, ErrorType:
		return false
	default:
		return true
	}
}
