package semantics

import (
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
)

// HasAccessibleContent tells if an element has content assistive technology can reach among its
// direct children: non-blank text, a child element not hidden from assistive technology, or
// content set through children or dangerouslySetInnerHTML attributes.
func (r *Resolver) HasAccessibleContent(e *jsx.Element) jsx.Tri {
	res := jsx.No
	for _, child := range e.Children {
		switch c := child.(type) {
		case *jsx.Text:
			if strings.TrimSpace(c.Value) != "" {
				return jsx.Yes
			}
		case *jsx.Element:
			res = res.Or(notTri(IsHidden(r.ElementType(c), c.Attrs)))
		case *jsx.Expr:
			if el := c.Value.Elem; c.Value.Kind == jsx.ValueElement && el != nil {
				res = res.Or(notTri(IsHidden(r.ElementType(el), el.Attrs)))
				break
			}
			res = res.Or(exprContent(c.Value))
		}
		if res == jsx.Yes {
			return res
		}
	}
	return res.Or(e.Attrs.Rendered("children")).Or(e.Attrs.Rendered("dangerouslySetInnerHTML"))
}

func exprContent(v jsx.Value) jsx.Tri {
	switch v.Kind {
	case jsx.ValueString, jsx.ValueNumber:
		text, _ := v.Text()
		return jsx.TriOf(strings.TrimSpace(text) != "")
	case jsx.ValueNull, jsx.ValueUndefined, jsx.ValueBool:
		return jsx.No
	case jsx.ValueConditional:
		a, b := exprContent(v.Cond.Then), exprContent(v.Cond.Else)
		if a == b {
			return a
		}
		return jsx.Unknown
	default:
		return jsx.Unknown
	}
}

func notTri(t jsx.Tri) jsx.Tri {
	switch t {
	case jsx.Yes:
		return jsx.No
	case jsx.No:
		return jsx.Yes
	default:
		return jsx.Unknown
	}
}

// ContainsComponent tells if any descendant down to depth levels matches one of the patterns by
// its raw name or by its resolved element type.
func (r *Resolver) ContainsComponent(e *jsx.Element, patterns []string, depth int) bool {
	if len(patterns) == 0 || depth <= 0 {
		return false
	}
	depth = min(depth, MaxSearchDepth)

	type item struct {
		e     *jsx.Element
		level int
	}
	queue := []item{{e: e}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.level > 0 {
			if matchName(patterns, it.e.Name) || matchName(patterns, string(r.ElementType(it.e))) {
				return true
			}
		}
		if it.level >= depth {
			continue
		}
		for _, child := range it.e.Children {
			switch c := child.(type) {
			case *jsx.Element:
				queue = append(queue, item{e: c, level: it.level + 1})
			case *jsx.Expr:
				if c.Value.Kind == jsx.ValueElement && c.Value.Elem != nil {
					queue = append(queue, item{e: c.Value.Elem, level: it.level + 1})
				}
			}
		}
	}
	return false
}
