package jsx

// Constructors below build trees by hand. Tests use them heavily; frontends use E to get
// the parent links right.

// E creates an element and links children to it.
func E(name string, attrs Attrs, children ...Node) *Element {
	e := &Element{
		Name:      name,
		Component: IsComponentName(name),
		Attrs:     attrs,
		Children:  children,
	}
	for _, c := range children {
		if ce, ok := c.(*Element); ok {
			ce.Parent = e
		}
	}
	return e
}

// A creates a named attribute.
func A(name string, v Value) *Attr {
	return &Attr{Name: name, Value: v}
}

// Flag creates a valueless attribute.
func Flag(name string) *Attr {
	return &Attr{Name: name, Value: Implicit()}
}

// S creates a string valued attribute.
func S(name, value string) *Attr {
	return &Attr{Name: name, Value: Str(value)}
}

// Spread creates a spread attribute.
func Spread(src string) *Attr {
	return &Attr{Spread: true, Value: Value{Kind: ValueExpr, Src: src}}
}

// T creates a text child.
func T(text string) *Text {
	return &Text{Value: text}
}

// X creates an expression child.
func X(v Value) *Expr {
	return &Expr{Value: v}
}

func Implicit() Value               { return Value{Kind: ValueImplicit} }
func Str(s string) Value            { return Value{Kind: ValueString, Str: s} }
func Num(n float64) Value           { return Value{Kind: ValueNumber, Num: n} }
func Bool(b bool) Value             { return Value{Kind: ValueBool, Bool: b} }
func Null() Value                   { return Value{Kind: ValueNull} }
func Undefined() Value              { return Value{Kind: ValueUndefined} }
func Code(src string) Value         { return Value{Kind: ValueExpr, Src: src} }
func ElementValue(e *Element) Value { return Value{Kind: ValueElement, Elem: e} }

// Cond creates a conditional of two literals.
func Cond(test string, then, els Value) Value {
	return Value{Kind: ValueConditional, Cond: &Conditional{Test: test, Then: then, Else: els}}
}
