package jsx

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Node is implemented by everything that can be a child of an element.
type Node interface {
	isNode()
	Span() (token.Pos, token.Pos)
}

// Element is a markup element or a component reference.
type Element struct {
	// Name is the tag as written: "div", "Button", "UI.Button", "svg:rect".
	// It is empty for fragments.
	Name string

	// Component marks references to user components rather than markup tags.
	Component bool

	Attrs    Attrs
	Children []Node

	// Parent is the enclosing element. For markup produced inside an expression hole it is
	// the element owning the hole, although the markup is not listed among its Children.
	Parent *Element

	Pos token.Pos
	End token.Pos
}

// Text is a run of literal text between tags.
type Text struct {
	Value string
	Pos   token.Pos
	End   token.Pos
}

// Expr is an expression hole among children: {label}, {"text"}, {cond ? "a" : "b"}.
type Expr struct {
	Value Value
	Pos   token.Pos
	End   token.Pos
}

func (*Element) isNode() {}
func (*Text) isNode()    {}
func (*Expr) isNode()    {}

func (e *Element) Span() (token.Pos, token.Pos) { return e.Pos, e.End }
func (t *Text) Span() (token.Pos, token.Pos)    { return t.Pos, t.End }
func (x *Expr) Span() (token.Pos, token.Pos)    { return x.Pos, x.End }

// IsFragment tells if the element is <>...</>.
func (e *Element) IsFragment() bool {
	return e.Name == ""
}

// Attr looks an attribute up by name, ignoring case.
func (e *Element) Attr(name string) (*Attr, Presence) {
	return e.Attrs.Lookup(name)
}

// Ancestors iterates over enclosing elements, nearest first.
func (e *Element) Ancestors(yield func(*Element) bool) {
	for p := e.Parent; p != nil; p = p.Parent {
		if !yield(p) {
			return
		}
	}
}

// IsComponentName tells if a tag name refers to a component rather than to markup:
// capitalized identifiers and member expressions.
func IsComponentName(name string) bool {
	if name == "" {
		return false
	}
	if strings.Contains(name, ".") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Attr is a single attribute or a spread.
type Attr struct {
	// Name is empty for spreads.
	Name   string
	Value  Value
	Spread bool
	Pos    token.Pos
}

// Attrs is an ordered attribute list.
type Attrs []*Attr

// Lookup finds the attribute with the given name, ignoring case. Later props override earlier
// ones, so the last written attribute wins and a spread after it turns the answer into Possible.
// The written attribute is still returned then. Without a written attribute any spread makes the
// answer Possible.
func (as Attrs) Lookup(name string) (*Attr, Presence) {
	var (
		found  *Attr
		spread bool
	)
	for _, a := range as {
		switch {
		case a.Spread:
			spread = true
		case strings.EqualFold(a.Name, name):
			found = a
			spread = false
		}
	}
	switch {
	case spread:
		return found, Possible
	case found != nil:
		return found, Present
	default:
		return nil, Absent
	}
}

// Get returns the written out attribute or nil, whatever spreads follow it.
func (as Attrs) Get(name string) *Attr {
	a, _ := as.Lookup(name)
	return a
}

// Has tells if the attribute is written out.
func (as Attrs) Has(name string) bool {
	return as.Get(name) != nil
}

// HasSpread tells if any spread is present.
func (as Attrs) HasSpread() bool {
	for _, a := range as {
		if a.Spread {
			return true
		}
	}
	return false
}

// Text returns the literal text of the attribute, see Value.Text.
func (as Attrs) Text(name string) (string, bool) {
	a := as.Get(name)
	if a == nil {
		return "", false
	}
	return a.Value.Text()
}

// IsTrue tells if the attribute is set to true. Spreads make an absent attribute Unknown.
func (as Attrs) IsTrue(name string) Tri {
	a, p := as.Lookup(name)
	switch p {
	case Present:
		return a.Value.IsTrue()
	case Possible:
		return Unknown
	default:
		return No
	}
}

// Rendered tells if the attribute ends up in the output: written out with a value
// that is not null or undefined.
func (as Attrs) Rendered(name string) Tri {
	a, p := as.Lookup(name)
	switch p {
	case Present:
		if a.Value.Dropped() {
			return No
		}
		return Yes
	case Possible:
		return Unknown
	default:
		return No
	}
}
