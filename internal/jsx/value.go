package jsx

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind describes what is statically known about an attribute value or an expression child.
type ValueKind int

const (
	valueKindInvalid ValueKind = iota

	// ValueImplicit is a valueless attribute like <input disabled />. It reads as boolean true.
	ValueImplicit
	ValueString
	ValueNumber
	ValueBool
	ValueNull
	ValueUndefined

	// ValueExpr is an expression the analysis does not evaluate.
	ValueExpr

	// ValueConditional is `test ? a : b` where both a and b are literals.
	ValueConditional

	// ValueElement is markup used as a value, like icon={<Icon />}.
	ValueElement
)

var valueKindNames = map[ValueKind]string{
	ValueImplicit:    "implicit",
	ValueString:      "string",
	ValueNumber:      "number",
	ValueBool:        "bool",
	ValueNull:        "null",
	ValueUndefined:   "undefined",
	ValueExpr:        "expr",
	ValueConditional: "conditional",
	ValueElement:     "element",
}

func (k ValueKind) String() string {
	v, ok := valueKindNames[k]
	if !ok {
		return fmt.Sprintf("value-kind-invalid(%d)", k)
	}
	return v
}

// Value is an attribute value or the content of an expression child.
type Value struct {
	Kind ValueKind

	Str  string
	Num  float64
	Bool bool

	// Src is the source text of an expression, kept for messages.
	Src string

	Cond *Conditional
	Elem *Element
}

// Conditional is a ternary whose branches are both literals.
type Conditional struct {
	Test string
	Then Value
	Else Value
}

// IsLiteral tells if the value is fully known.
func (v Value) IsLiteral() bool {
	switch v.Kind {
	case ValueImplicit, ValueString, ValueNumber, ValueBool, ValueNull, ValueUndefined:
		return true
	default:
		return false
	}
}

// Dropped tells if the value is null or undefined: such an attribute is not rendered at all.
func (v Value) Dropped() bool {
	return v.Kind == ValueNull || v.Kind == ValueUndefined
}

// Text returns the string form of a literal the way it would be rendered into the attribute.
// Valueless attributes read as "true". Dropped values and non-literals have no text.
func (v Value) Text() (string, bool) {
	switch v.Kind {
	case ValueImplicit:
		return "true", true
	case ValueString:
		return v.Str, true
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case ValueBool:
		return strconv.FormatBool(v.Bool), true
	default:
		return "", false
	}
}

// IsTrue tells if the value is boolean true, with the string "true" folded to a boolean.
func (v Value) IsTrue() Tri {
	switch v.Kind {
	case ValueImplicit:
		return Yes
	case ValueBool:
		return TriOf(v.Bool)
	case ValueString:
		return TriOf(strings.EqualFold(v.Str, "true"))
	case ValueNumber, ValueNull, ValueUndefined, ValueElement:
		return No
	case ValueConditional:
		a, b := v.Cond.Then.IsTrue(), v.Cond.Else.IsTrue()
		if a == b {
			return a
		}
		return Unknown
	default:
		return Unknown
	}
}

// IsFalse tells if the value is boolean false, with the string "false" folded to a boolean.
func (v Value) IsFalse() Tri {
	switch v.Kind {
	case ValueBool:
		return TriOf(!v.Bool)
	case ValueString:
		return TriOf(strings.EqualFold(v.Str, "false"))
	case ValueImplicit, ValueNumber, ValueNull, ValueUndefined, ValueElement:
		return No
	case ValueConditional:
		a, b := v.Cond.Then.IsFalse(), v.Cond.Else.IsFalse()
		if a == b {
			return a
		}
		return Unknown
	default:
		return Unknown
	}
}

// Branches returns the possible literal values: the value itself for a literal, both
// branches for a conditional, nothing otherwise.
func (v Value) Branches() []Value {
	switch {
	case v.IsLiteral():
		return []Value{v}
	case v.Kind == ValueConditional:
		return []Value{v.Cond.Then, v.Cond.Else}
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueImplicit:
		return "<implicit>"
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueNumber, ValueBool:
		s, _ := v.Text()
		return s
	case ValueNull:
		return "null"
	case ValueUndefined:
		return "undefined"
	case ValueExpr:
		return "{" + v.Src + "}"
	case ValueConditional:
		return fmt.Sprintf("{%s ? %s : %s}", v.Cond.Test, v.Cond.Then, v.Cond.Else)
	case ValueElement:
		if v.Elem != nil {
			return "<" + v.Elem.Name + "/>"
		}
		return "<element>"
	default:
		return v.Kind.String()
	}
}
