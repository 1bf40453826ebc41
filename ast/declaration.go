package ast

// PropertyValue is the ordered list of values assigned to a declaration.
type PropertyValue struct {
	base
	Values *NodeList[Value]
}

func NewPropertyValue() *PropertyValue {
	pv := &PropertyValue{}
	pv.Values = NewNodeList[Value](pv)
	return pv
}

// Property carries a CSS property name together with the metadata the
// static registry (property.go) associates with recognized names.
type Property struct {
	base
	Name string // lowercased
	Raw  string // as written in source
	Meta PropertyMeta
}

// NewProperty looks up name in the registry and returns a fully-populated
// Property node.
func NewProperty(raw string) *Property {
	name := lowerASCII(raw)
	return &Property{Name: name, Raw: raw, Meta: Lookup(name)}
}

// Declaration is one `property: value` pair. StarHack marks the IE6/7
// `*property: value` hack, which the registry treats as non-standard but
// the parser still accepts.
type Declaration struct {
	base
	Prop     *Property
	Values   *PropertyValue
	StarHack bool
}

func NewDeclaration(prop *Property, values *PropertyValue) *Declaration {
	d := &Declaration{Prop: prop, Values: values}
	if prop != nil {
		attach(prop, d)
	}
	if values != nil {
		attach(values, d)
	}
	return d
}

func (*Declaration) isDeclarative() {}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
