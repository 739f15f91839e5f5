package checks

import (
	"math"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

// tagOf is the name option lists are matched against: the resolved element type, or the name as
// written for components nothing is known about.
func tagOf(p *Pass, e *jsx.Element) string {
	t := p.Resolver.ElementType(e)
	if t.IsOpaque() {
		return e.Name
	}
	return string(t)
}

func isDOM(t semantics.ElementType) bool {
	return !t.IsOpaque() && taxonomy.IsDOM(string(t))
}

func listed(names []string, name string) bool {
	return slices.Contains(names, name)
}

// matchAny matches a name against exact names and doublestar patterns.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// truthy evaluates a value the way a condition would.
func truthy(v jsx.Value) jsx.Tri {
	switch v.Kind {
	case jsx.ValueImplicit, jsx.ValueElement:
		return jsx.Yes
	case jsx.ValueString:
		return jsx.TriOf(v.Str != "")
	case jsx.ValueNumber:
		return jsx.TriOf(v.Num != 0 && !math.IsNaN(v.Num))
	case jsx.ValueBool:
		return jsx.TriOf(v.Bool)
	case jsx.ValueNull, jsx.ValueUndefined:
		return jsx.No
	case jsx.ValueConditional:
		a, b := truthy(v.Cond.Then), truthy(v.Cond.Else)
		if a == b {
			return a
		}
		return jsx.Unknown
	default:
		return jsx.Unknown
	}
}

// attrTruthy tells if the attribute is set to a truthy value. Spreads make an absent attribute
// Unknown.
func attrTruthy(attrs jsx.Attrs, name string) jsx.Tri {
	a, p := attrs.Lookup(name)
	switch p {
	case jsx.Present:
		return truthy(a.Value)
	case jsx.Possible:
		return jsx.Unknown
	default:
		return jsx.No
	}
}

// labelHasValue tells if a labelling attribute carries something: an empty string or undefined
// does not count, anything not literal does.
func labelHasValue(attrs jsx.Attrs, name string) jsx.Tri {
	a, p := attrs.Lookup(name)
	switch p {
	case jsx.Absent:
		return jsx.No
	case jsx.Possible:
		return jsx.Unknown
	}
	switch a.Value.Kind {
	case jsx.ValueUndefined:
		return jsx.No
	case jsx.ValueString:
		return jsx.TriOf(a.Value.Str != "")
	default:
		return jsx.Yes
	}
}

// presence reduces a lookup to a Tri: Possible becomes Unknown.
func presence(attrs jsx.Attrs, name string) jsx.Tri {
	switch _, p := attrs.Lookup(name); p {
	case jsx.Present:
		return jsx.Yes
	case jsx.Possible:
		return jsx.Unknown
	default:
		return jsx.No
	}
}

// anyRendered tells if any of the handlers ends up on the element.
func anyRendered(attrs jsx.Attrs, names []string) jsx.Tri {
	res := jsx.No
	for _, name := range names {
		res = res.Or(attrs.Rendered(name))
		if res == jsx.Yes {
			break
		}
	}
	return res
}

// literalText returns the text of a literal string-like value and false for anything else.
func literalText(v jsx.Value) (string, bool) {
	if v.Kind == jsx.ValueImplicit {
		return "", false
	}
	return v.Text()
}

// joinOr joins items as "a", "a, or b", "a, b, or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}
