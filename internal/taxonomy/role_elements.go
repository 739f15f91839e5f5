package taxonomy

import (
	"cmp"
	"slices"
	"strings"
)

// TagRef is an element, optionally with a single attribute, that carries a role natively.
type TagRef struct {
	Name      string
	AttrName  string
	AttrValue string
}

func (t TagRef) String() string {
	switch {
	case t.AttrName == "":
		return "<" + t.Name + ">"
	case t.AttrValue == "":
		return "<" + t.Name + " " + t.AttrName + "=...>"
	default:
		return "<" + t.Name + " " + t.AttrName + "=\"" + t.AttrValue + "\">"
	}
}

var roleElements = map[string][]TagRef{}

func init() {
	for name, e := range elements {
		if e.Role == "" || e.Role == "document" || e.Role == "textbox" {
			continue
		}
		roleElements[e.Role] = append(roleElements[e.Role], TagRef{Name: name})
	}
	for role, refs := range map[string][]TagRef{
		"link":       {{Name: "a", AttrName: "href"}, {Name: "area", AttrName: "href"}},
		"button":     {{Name: "input", AttrName: "type", AttrValue: "button"}},
		"checkbox":   {{Name: "input", AttrName: "type", AttrValue: "checkbox"}},
		"radio":      {{Name: "input", AttrName: "type", AttrValue: "radio"}},
		"slider":     {{Name: "input", AttrName: "type", AttrValue: "range"}},
		"spinbutton": {{Name: "input", AttrName: "type", AttrValue: "number"}},
		"searchbox":  {{Name: "input", AttrName: "type", AttrValue: "search"}},
		"textbox":    {{Name: "textarea"}, {Name: "input", AttrName: "type", AttrValue: "text"}},
		"listbox":    {{Name: "select", AttrName: "multiple"}},
		"rowheader":  {{Name: "th", AttrName: "scope", AttrValue: "row"}},
	} {
		roleElements[role] = append(roleElements[role], refs...)
	}
	for role, refs := range roleElements {
		sortTagRefs(refs)
		roleElements[role] = refs
	}
}

// RoleElements returns elements carrying the role natively, sorted by tag.
func RoleElements(role string) []TagRef {
	refs := roleElements[role]
	return slices.Clone(refs)
}

func sortTagRefs(refs []TagRef) {
	slices.SortFunc(refs, func(a, b TagRef) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.AttrValue, b.AttrValue),
		)
	})
}
