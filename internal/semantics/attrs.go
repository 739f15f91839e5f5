package semantics

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

// htmlFlag reads a boolean HTML attribute as rendered by JSX: false, null and undefined drop
// the attribute, anything else including the string "false" keeps it.
func htmlFlag(attrs jsx.Attrs, name string) jsx.Tri {
	a, p := attrs.Lookup(name)
	switch p {
	case jsx.Absent:
		return jsx.No
	case jsx.Possible:
		return jsx.Unknown
	}
	return flagValue(a.Value)
}

func flagValue(v jsx.Value) jsx.Tri {
	switch v.Kind {
	case jsx.ValueNull, jsx.ValueUndefined:
		return jsx.No
	case jsx.ValueBool:
		return jsx.TriOf(v.Bool)
	case jsx.ValueExpr:
		return jsx.Unknown
	case jsx.ValueConditional:
		a, b := flagValue(v.Cond.Then), flagValue(v.Cond.Else)
		if a == b {
			return a
		}
		return jsx.Unknown
	default:
		return jsx.Yes
	}
}

// IsHidden tells if the element is removed from the accessibility tree: aria-hidden set to
// true, the hidden attribute, or a hidden input.
func IsHidden(tag ElementType, attrs jsx.Attrs) jsx.Tri {
	if tag == "input" {
		if typ, ok := attrs.Text("type"); ok && strings.EqualFold(typ, "hidden") {
			return jsx.Yes
		}
	}
	res := attrs.IsTrue("aria-hidden")
	if !tag.IsOpaque() && taxonomy.IsDOM(string(tag)) {
		res = res.Or(htmlFlag(attrs, "hidden"))
	}
	return res
}

// IsDisabled tells if the element is disabled natively or with aria-disabled.
func IsDisabled(attrs jsx.Attrs) jsx.Tri {
	return htmlFlag(attrs, "disabled").Or(attrs.IsTrue("aria-disabled"))
}

// IsContentEditable tells if the element is an editing host.
func IsContentEditable(attrs jsx.Attrs) jsx.Tri {
	a, p := attrs.Lookup("contentEditable")
	switch p {
	case jsx.Absent:
		return jsx.No
	case jsx.Possible:
		return jsx.Unknown
	}
	if text, ok := a.Value.Text(); ok {
		switch strings.ToLower(text) {
		case "", "true", "plaintext-only":
			return jsx.Yes
		default:
			return jsx.No
		}
	}
	if a.Value.Dropped() {
		return jsx.No
	}
	return a.Value.IsTrue()
}

// TabIndex reads an integer tabIndex. The answer is No when the attribute is absent or not an
// integer literal, Unknown when an expression or a spread sets it.
func TabIndex(attrs jsx.Attrs) (int, jsx.Tri) {
	a, p := attrs.Lookup("tabIndex")
	switch p {
	case jsx.Absent:
		return 0, jsx.No
	case jsx.Possible:
		return 0, jsx.Unknown
	}

	switch a.Value.Kind {
	case jsx.ValueNumber:
		if a.Value.Num != math.Trunc(a.Value.Num) {
			return 0, jsx.No
		}
		return int(a.Value.Num), jsx.Yes
	case jsx.ValueString:
		f, err := strconv.ParseFloat(strings.TrimSpace(a.Value.Str), 64)
		if err != nil || f != math.Trunc(f) {
			return 0, jsx.No
		}
		return int(f), jsx.Yes
	case jsx.ValueExpr, jsx.ValueConditional:
		return 0, jsx.Unknown
	default:
		return 0, jsx.No
	}
}

// NativelyInteractive tells if the element is interactive by its tag alone: buttons, inputs,
// anchors with href and media with controls.
func NativelyInteractive(tag ElementType, attrs jsx.Attrs) jsx.Tri {
	defaults, ok := taxonomy.ElementDefaults(string(tag))
	if !ok {
		if tag.IsOpaque() {
			return jsx.Unknown
		}
		return jsx.No
	}
	if defaults.Category == taxonomy.CategoryInteractive {
		return jsx.Yes
	}
	switch defaults.InteractiveWith {
	case "":
		return jsx.No
	case "href":
		return attrs.Rendered("href")
	default:
		return htmlFlag(attrs, defaults.InteractiveWith)
	}
}

// IsFocusable tells if the element takes focus: an explicit non-negative tabIndex or, without
// one, a natively interactive element.
func IsFocusable(tag ElementType, attrs jsx.Attrs) jsx.Tri {
	idx, known := TabIndex(attrs)
	switch known {
	case jsx.Yes:
		return jsx.TriOf(idx >= 0)
	case jsx.Unknown:
		return jsx.Unknown
	}
	return NativelyInteractive(tag, attrs)
}

// HasForAttribute tells if a label points to its control with any of the configured attributes.
func (r *Resolver) HasForAttribute(attrs jsx.Attrs) jsx.Tri {
	res := jsx.No
	for _, name := range r.forAttrs {
		a, p := attrs.Lookup(name)
		switch p {
		case jsx.Possible:
			res = res.Or(jsx.Unknown)
		case jsx.Present:
			if text, ok := a.Value.Text(); ok {
				res = res.Or(jsx.TriOf(strings.TrimSpace(text) != "" && a.Value.Kind != jsx.ValueImplicit))
				continue
			}
			if a.Value.Dropped() {
				continue
			}
			res = res.Or(jsx.Yes)
		}
	}
	return res
}
