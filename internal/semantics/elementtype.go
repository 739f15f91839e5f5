package semantics

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/a11yful/internal/jsx"
)

// ElementType is the markup tag an element renders as.
type ElementType string

// Opaque is the type of components that are not mapped to any tag.
const Opaque ElementType = ""

// IsOpaque tells if nothing is known about what the element renders.
func (t ElementType) IsOpaque() bool {
	return t == Opaque
}

func (t ElementType) String() string {
	if t == Opaque {
		return "<opaque>"
	}
	return string(t)
}

// ElementType resolves the tag an element renders as. Markup tags resolve to themselves,
// components go through the polymorphic attribute and the component map, unmapped
// components are Opaque.
func (r *Resolver) ElementType(e *jsx.Element) ElementType {
	name := e.Name
	if r.polyProp != "" {
		if v, ok := e.Attrs.Text(r.polyProp); ok && v != "" {
			if len(r.polyAllow) == 0 || matchName(r.polyAllow, name) {
				name = v
			}
		}
	}
	return r.TypeOf(name)
}

// TypeOf resolves a bare tag name. Exact component names win over patterns, patterns are
// tried in sorted order.
func (r *Resolver) TypeOf(name string) ElementType {
	if name == "" {
		return Opaque
	}
	if !jsx.IsComponentName(name) {
		return ElementType(name)
	}
	if tag, ok := r.exact[name]; ok {
		return ElementType(tag)
	}
	for _, g := range r.globs {
		if ok, _ := doublestar.Match(g.pattern, name); ok {
			return ElementType(g.tag)
		}
	}
	return Opaque
}
