package taxonomy

import (
	"fmt"
	"strings"
)

// Category is the default interactivity of an element before any role or attribute is applied.
type Category int

const (
	// CategoryStatic elements carry no semantics of their own: div, span, b.
	CategoryStatic Category = iota
	CategoryInteractive
	CategoryNonInteractive
)

func (c Category) String() string {
	switch c {
	case CategoryStatic:
		return "static"
	case CategoryInteractive:
		return "interactive"
	case CategoryNonInteractive:
		return "non-interactive"
	default:
		return fmt.Sprintf("category-invalid(%d)", c)
	}
}

// Element holds default semantics of an HTML element.
type Element struct {
	Name string

	// Role is the implicit role when no attribute changes it, empty when there is none.
	Role     string
	Category Category

	// InteractiveWith names an attribute turning the element interactive when rendered:
	// href for anchors, controls for media.
	InteractiveWith string

	// Void elements never have children.
	Void bool

	// Reserved elements are not rendered and must not carry ARIA attributes.
	Reserved bool
}

var elements = map[string]Element{}

func init() {
	add := func(cat Category, role string, names ...string) {
		for _, name := range names {
			elements[name] = Element{Name: name, Role: role, Category: cat}
		}
	}

	// interactive
	add(CategoryInteractive, "button", "button")
	add(CategoryInteractive, "listbox", "datalist")
	add(CategoryInteractive, "textbox", "input", "textarea")
	add(CategoryInteractive, "option", "option")
	add(CategoryInteractive, "combobox", "select")
	add(CategoryInteractive, "", "menuitem", "summary")

	// non-interactive with an implicit role
	add(CategoryNonInteractive, "article", "article")
	add(CategoryNonInteractive, "complementary", "aside")
	add(CategoryNonInteractive, "blockquote", "blockquote")
	add(CategoryNonInteractive, "document", "body", "html")
	add(CategoryNonInteractive, "caption", "caption")
	add(CategoryNonInteractive, "code", "code")
	add(CategoryNonInteractive, "definition", "dd")
	add(CategoryNonInteractive, "deletion", "del")
	add(CategoryNonInteractive, "group", "details", "fieldset", "optgroup")
	add(CategoryNonInteractive, "term", "dfn", "dt")
	add(CategoryNonInteractive, "dialog", "dialog")
	add(CategoryNonInteractive, "list", "dl", "menu", "ol", "ul")
	add(CategoryNonInteractive, "emphasis", "em")
	add(CategoryNonInteractive, "figure", "figure")
	add(CategoryNonInteractive, "contentinfo", "footer")
	add(CategoryNonInteractive, "form", "form")
	add(CategoryNonInteractive, "heading", "h1", "h2", "h3", "h4", "h5", "h6")
	add(CategoryNonInteractive, "banner", "header")
	add(CategoryNonInteractive, "separator", "hr")
	add(CategoryNonInteractive, "img", "img")
	add(CategoryNonInteractive, "insertion", "ins")
	add(CategoryNonInteractive, "listitem", "li")
	add(CategoryNonInteractive, "main", "main")
	add(CategoryNonInteractive, "mark", "mark")
	add(CategoryNonInteractive, "math", "math")
	add(CategoryNonInteractive, "meter", "meter")
	add(CategoryNonInteractive, "navigation", "nav")
	add(CategoryNonInteractive, "status", "output")
	add(CategoryNonInteractive, "paragraph", "p")
	add(CategoryNonInteractive, "progressbar", "progress")
	add(CategoryNonInteractive, "search", "search")
	add(CategoryNonInteractive, "region", "section")
	add(CategoryNonInteractive, "strong", "strong")
	add(CategoryNonInteractive, "subscript", "sub")
	add(CategoryNonInteractive, "superscript", "sup")
	add(CategoryNonInteractive, "table", "table")
	add(CategoryNonInteractive, "rowgroup", "tbody", "tfoot", "thead")
	add(CategoryNonInteractive, "cell", "td")
	add(CategoryNonInteractive, "columnheader", "th")
	add(CategoryNonInteractive, "row", "tr")
	add(CategoryNonInteractive, "time", "time")

	// non-interactive without a role of their own
	add(CategoryNonInteractive, "", "address", "br", "canvas", "embed", "figcaption", "iframe",
		"label", "legend", "marquee", "pre", "ruby")

	// static
	add(CategoryStatic, "", "a", "abbr", "acronym", "applet", "area", "audio", "b", "base", "bdi",
		"bdo", "big", "blink", "center", "cite", "col", "colgroup", "content", "data", "dir", "div",
		"font", "frame", "frameset", "head", "hgroup", "i", "image", "kbd", "keygen", "link", "map",
		"meta", "noembed", "noframes", "noscript", "object", "param", "picture", "plaintext", "q",
		"rb", "rp", "rt", "rtc", "s", "samp", "script", "slot", "small", "source", "spacer", "span",
		"strike", "style", "template", "title", "track", "tt", "u", "var", "video", "wbr", "xmp",
	)

	for name, attr := range map[string]string{"a": "href", "area": "href", "audio": "controls", "video": "controls"} {
		e := elements[name]
		e.InteractiveWith = attr
		elements[name] = e
	}
	for _, name := range strings.Fields("area base br col embed hr img input keygen link meta param source track wbr") {
		e := elements[name]
		e.Void = true
		elements[name] = e
	}
	for _, name := range strings.Fields("base col colgroup head html link meta noembed noscript param picture script source style title track") {
		e := elements[name]
		e.Reserved = true
		elements[name] = e
	}
}

// ElementDefaults returns default semantics of an HTML element. Tags are matched exactly,
// markup in JSX is case-sensitive.
func ElementDefaults(tag string) (Element, bool) {
	e, ok := elements[tag]
	return e, ok
}

// IsDOM tells if the tag is a known HTML element.
func IsDOM(tag string) bool {
	_, ok := elements[tag]
	return ok
}

// IsReserved tells if the tag is a known element that is never rendered.
func IsReserved(tag string) bool {
	return elements[tag].Reserved
}
