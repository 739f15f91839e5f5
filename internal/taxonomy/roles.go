package taxonomy

import (
	"maps"
	"slices"
	"strings"
)

// Role describes a single WAI-ARIA role.
type Role struct {
	Name     string
	Abstract bool

	// Superclasses are the direct superclass roles.
	Superclasses []string

	// Props are properties the role introduces itself, inherited ones are not listed.
	Props []string
}

const (
	// RoleWidget is the abstract root of every interactive role.
	RoleWidget = "widget"
)

var roleTable = []Role{
	// abstract
	abstract("roletype", ""),
	abstract("structure", "roletype"),
	abstract("widget", "roletype"),
	abstract("window", "roletype", "aria-modal"),
	abstract("command", "widget"),
	abstract("composite", "widget", "aria-activedescendant aria-disabled"),
	abstract("input", "widget", "aria-disabled"),
	abstract("range", "structure", "aria-valuemax aria-valuemin aria-valuenow aria-valuetext"),
	abstract("section", "structure"),
	abstract("sectionhead", "structure"),
	abstract("landmark", "section"),
	abstract("select", "composite group", "aria-orientation"),

	// document structure
	role("application", "structure", "aria-activedescendant aria-disabled aria-errormessage aria-expanded aria-haspopup aria-invalid"),
	role("article", "document", "aria-posinset aria-setsize"),
	role("blockquote", "section"),
	role("caption", "section"),
	role("cell", "section", "aria-colindex aria-colindextext aria-colspan aria-rowindex aria-rowindextext aria-rowspan"),
	role("code", "section"),
	role("columnheader", "cell gridcell sectionhead", "aria-sort"),
	role("definition", "section"),
	role("deletion", "section"),
	role("directory", "list"),
	role("document", "structure"),
	role("emphasis", "section"),
	role("feed", "list"),
	role("figure", "section"),
	role("generic", "structure"),
	role("group", "section", "aria-activedescendant aria-disabled"),
	role("heading", "sectionhead", "aria-level"),
	role("img", "section"),
	role("insertion", "section"),
	role("list", "section"),
	role("listitem", "section", "aria-level aria-posinset aria-setsize"),
	role("mark", "section"),
	role("math", "section"),
	role("meter", "range"),
	role("none", "structure"),
	role("note", "section"),
	role("paragraph", "section"),
	role("presentation", "structure"),
	role("progressbar", "range"),
	role("row", "group widget", "aria-colindex aria-expanded aria-level aria-posinset aria-rowindex aria-rowindextext aria-selected aria-setsize"),
	role("rowgroup", "structure"),
	role("rowheader", "cell gridcell sectionhead", "aria-expanded aria-sort"),
	role("separator", "structure", "aria-orientation aria-valuemax aria-valuemin aria-valuenow aria-valuetext"),
	role("strong", "section"),
	role("subscript", "section"),
	role("superscript", "section"),
	role("table", "section", "aria-colcount aria-rowcount"),
	role("term", "section"),
	role("time", "section"),
	role("toolbar", "group", "aria-orientation"),
	role("tooltip", "section"),

	// widgets
	role("button", "command", "aria-disabled aria-expanded aria-haspopup aria-pressed"),
	role("checkbox", "input", "aria-checked aria-errormessage aria-expanded aria-invalid aria-readonly aria-required"),
	role("combobox", "input", "aria-activedescendant aria-autocomplete aria-controls aria-errormessage aria-expanded aria-haspopup aria-invalid aria-readonly aria-required"),
	role("grid", "composite table", "aria-multiselectable aria-readonly"),
	role("gridcell", "cell widget", "aria-disabled aria-errormessage aria-expanded aria-haspopup aria-invalid aria-readonly aria-required aria-selected"),
	role("link", "command", "aria-disabled aria-expanded aria-haspopup"),
	role("listbox", "select", "aria-errormessage aria-expanded aria-invalid aria-multiselectable aria-readonly aria-required"),
	role("menu", "select"),
	role("menubar", "menu"),
	role("menuitem", "command", "aria-disabled aria-expanded aria-haspopup aria-posinset aria-setsize"),
	role("menuitemcheckbox", "checkbox menuitem"),
	role("menuitemradio", "menuitemcheckbox radio"),
	role("option", "input", "aria-checked aria-posinset aria-selected aria-setsize"),
	role("radio", "input", "aria-checked aria-posinset aria-setsize"),
	role("radiogroup", "group", "aria-errormessage aria-invalid aria-readonly aria-required"),
	role("scrollbar", "range widget", "aria-controls aria-orientation"),
	role("searchbox", "textbox"),
	role("slider", "input range", "aria-errormessage aria-haspopup aria-invalid aria-orientation aria-readonly"),
	role("spinbutton", "composite input range", "aria-errormessage aria-invalid aria-readonly aria-required"),
	role("switch", "checkbox"),
	role("tab", "sectionhead widget", "aria-disabled aria-expanded aria-haspopup aria-posinset aria-selected aria-setsize"),
	role("tablist", "composite", "aria-multiselectable aria-orientation"),
	role("tabpanel", "section"),
	role("textbox", "input", "aria-activedescendant aria-autocomplete aria-errormessage aria-haspopup aria-invalid aria-multiline aria-placeholder aria-readonly aria-required"),
	role("tree", "select", "aria-errormessage aria-invalid aria-multiselectable aria-required"),
	role("treegrid", "grid tree"),
	role("treeitem", "listitem option", "aria-expanded aria-haspopup"),

	// live regions and windows
	role("alert", "section"),
	role("alertdialog", "alert dialog"),
	role("dialog", "window"),
	role("log", "section"),
	role("marquee", "section"),
	role("status", "section"),
	role("timer", "status"),

	// landmarks
	role("banner", "landmark"),
	role("complementary", "landmark"),
	role("contentinfo", "landmark"),
	role("form", "landmark"),
	role("main", "landmark"),
	role("navigation", "landmark"),
	role("region", "landmark"),
	role("search", "landmark"),

	// DPUB
	role("doc-abstract", "section"),
	role("doc-acknowledgments", "landmark"),
	role("doc-afterword", "landmark"),
	role("doc-appendix", "landmark"),
	role("doc-backlink", "link"),
	role("doc-biblioentry", "listitem"),
	role("doc-bibliography", "landmark"),
	role("doc-biblioref", "link"),
	role("doc-chapter", "landmark"),
	role("doc-colophon", "section"),
	role("doc-conclusion", "landmark"),
	role("doc-cover", "img"),
	role("doc-credit", "section"),
	role("doc-credits", "landmark"),
	role("doc-dedication", "section"),
	role("doc-endnote", "listitem"),
	role("doc-endnotes", "landmark"),
	role("doc-epigraph", "section"),
	role("doc-epilogue", "landmark"),
	role("doc-errata", "landmark"),
	role("doc-example", "section"),
	role("doc-footnote", "section"),
	role("doc-foreword", "landmark"),
	role("doc-glossary", "landmark"),
	role("doc-glossref", "link"),
	role("doc-index", "navigation"),
	role("doc-introduction", "landmark"),
	role("doc-noteref", "link"),
	role("doc-notice", "note"),
	role("doc-pagebreak", "separator"),
	role("doc-pagelist", "navigation"),
	role("doc-part", "landmark"),
	role("doc-preface", "landmark"),
	role("doc-prologue", "landmark"),
	role("doc-pullquote", "none"),
	role("doc-qna", "section"),
	role("doc-subtitle", "sectionhead"),
	role("doc-tip", "note"),
	role("doc-toc", "navigation"),

	// Graphics
	role("graphics-document", "document"),
	role("graphics-object", "group"),
	role("graphics-symbol", "img"),
}

var (
	roles       = map[string]*Role{}
	roleSupers  = map[string]map[string]struct{}{}
	roleProps   = map[string]map[string]struct{}{}
	roleNames   []string
	concreteSet []string
)

func init() {
	for i := range roleTable {
		r := &roleTable[i]
		roles[r.Name] = r
	}
	for name := range roles {
		roleSupers[name] = closeSupers(name)
	}
	for name := range roles {
		props := map[string]struct{}{}
		for _, p := range roles[name].Props {
			props[p] = struct{}{}
		}
		for super := range roleSupers[name] {
			for _, p := range roles[super].Props {
				props[p] = struct{}{}
			}
		}
		for _, p := range globalProps {
			props[p] = struct{}{}
		}
		roleProps[name] = props
	}

	roleNames = slices.Sorted(maps.Keys(roles))
	for _, name := range roleNames {
		if !roles[name].Abstract {
			concreteSet = append(concreteSet, name)
		}
	}
}

// closeSupers walks the superclass graph with an explicit queue.
func closeSupers(name string) map[string]struct{} {
	res := map[string]struct{}{}
	queue := slices.Clone(roles[name].Superclasses)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := res[cur]; seen {
			continue
		}
		r, ok := roles[cur]
		if !ok {
			panic("taxonomy: unknown superclass " + cur + " of role " + name)
		}
		res[cur] = struct{}{}
		queue = append(queue, r.Superclasses...)
	}
	return res
}

// LookupRole returns a role by its exact name.
func LookupRole(name string) (*Role, bool) {
	r, ok := roles[name]
	return r, ok
}

// IsValidRole tells if the name is a known non-abstract role.
func IsValidRole(name string) bool {
	r, ok := roles[name]
	return ok && !r.Abstract
}

// IsAbstractRole tells if the name is a known abstract role.
func IsAbstractRole(name string) bool {
	r, ok := roles[name]
	return ok && r.Abstract
}

// Descends tells if super is among transitive superclasses of role.
func Descends(role, super string) bool {
	_, ok := roleSupers[role][super]
	return ok
}

// Superclasses returns transitive superclasses of a role, sorted.
func Superclasses(role string) []string {
	return slices.Sorted(maps.Keys(roleSupers[role]))
}

// IsWidgetRole tells if a valid role descends from widget.
func IsWidgetRole(role string) bool {
	return IsValidRole(role) && Descends(role, RoleWidget)
}

// IsPresentationRole tells if the role removes element semantics.
func IsPresentationRole(role string) bool {
	return role == "presentation" || role == "none"
}

// RoleSupportsProp tells if an aria-* property is allowed on the role, global properties included.
func RoleSupportsProp(role, prop string) bool {
	props, ok := roleProps[role]
	if !ok {
		return false
	}
	_, ok = props[strings.ToLower(prop)]
	return ok
}

// RoleNames returns every role name, abstract ones included, sorted.
func RoleNames() []string {
	return slices.Clone(roleNames)
}

// ConcreteRoles returns non-abstract role names, sorted.
func ConcreteRoles() []string {
	return slices.Clone(concreteSet)
}

func role(name, supers string, props ...string) Role {
	return Role{
		Name:         name,
		Superclasses: strings.Fields(supers),
		Props:        fields(props),
	}
}

func abstract(name, supers string, props ...string) Role {
	r := role(name, supers, props...)
	r.Abstract = true
	return r
}

func fields(s []string) []string {
	var res []string
	for _, v := range s {
		res = append(res, strings.Fields(v)...)
	}
	return res
}
