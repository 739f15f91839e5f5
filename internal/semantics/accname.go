package semantics

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"

	"github.com/sirkon/a11yful/internal/jsx"
)

// NamePolicy tunes the accessible name search.
type NamePolicy struct {
	// Depth overrides the resolver search budget when positive. It is still capped.
	Depth int

	// AcceptConditionalLiterals lets {cond ? "a" : "b"} with two non-empty literal branches
	// provide a name, as a text child or as a label attribute value.
	AcceptConditionalLiterals bool

	// TrustExpressionLabels lets a label attribute set by an expression provide a name.
	TrustExpressionLabels bool
}

// NameSource tells where an accessible name was found.
type NameSource int

const (
	nameSourceInvalid NameSource = iota
	NameFromText
	NameFromLabelAttribute
	NameFromControlComponent
	NameFromConditional
	NameFromExpressionLabel
)

var nameSourceNames = map[NameSource]string{
	NameFromText:             "text",
	NameFromLabelAttribute:   "label attribute",
	NameFromControlComponent: "control component",
	NameFromConditional:      "conditional literal",
	NameFromExpressionLabel:  "expression label",
}

func (s NameSource) String() string {
	v, ok := nameSourceNames[s]
	if !ok {
		return fmt.Sprintf("name-source-invalid(%d)", s)
	}
	return v
}

// NameSearch is the outcome of an accessible name search.
type NameSearch struct {
	Found  bool
	Source NameSource

	// At is the node that provided the name.
	At jsx.Node

	// Deepest is the deepest level visited, the element itself is level 0.
	Deepest int

	// Visited counts visited nodes.
	Visited int

	// EmptyLabels are label attributes written with an empty literal. They are reported so
	// that a caller can tell "no label" from "label with nothing in it".
	EmptyLabels []*jsx.Attr

	// Unresolved counts expression children, expression labels and spreads met on the way
	// that could have provided a name when evaluated.
	Unresolved int
}

// Inconclusive tells if the name was not found but unresolved expressions may provide one.
func (s NameSearch) Inconclusive() bool {
	return !s.Found && s.Unresolved > 0
}

type nameItem struct {
	node  jsx.Node
	level int
}

// FindAccessibleName searches the element and its descendants, breadth first and within the
// depth budget, for a source of an accessible name.
func (r *Resolver) FindAccessibleName(e *jsx.Element, policy NamePolicy) NameSearch {
	budget := r.depth
	if policy.Depth > 0 {
		budget = min(policy.Depth, MaxSearchDepth)
	}

	var res NameSearch
	queue := []nameItem{{node: e}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		res.Visited++
		res.Deepest = max(res.Deepest, it.level)

		switch n := it.node.(type) {
		case *jsx.Text:
			if MeaningfulText(n.Value) {
				return res.found(NameFromText, n)
			}

		case *jsx.Expr:
			if n.Value.Kind == jsx.ValueElement && n.Value.Elem != nil {
				// {<span>Save</span>} renders exactly as the markup itself.
				queue = append(queue, nameItem{node: n.Value.Elem, level: it.level})
				continue
			}
			if src, ok := r.exprName(n.Value, policy, &res); ok {
				return res.found(src, n)
			}

		case *jsx.Element:
			if it.level > 0 {
				if IsHidden(r.ElementType(n), n.Attrs) == jsx.Yes {
					continue
				}
				if r.isControlComponent(n) {
					return res.found(NameFromControlComponent, n)
				}
			}
			if src, ok := r.labelName(n, policy, &res); ok {
				return res.found(src, n)
			}
			if it.level >= budget {
				continue
			}
			for _, child := range n.Children {
				queue = append(queue, nameItem{node: child, level: it.level + 1})
			}
		}
	}

	return res
}

// HasAccessibleName tells if a name source was found within the budget.
func (r *Resolver) HasAccessibleName(e *jsx.Element, policy NamePolicy) bool {
	return r.FindAccessibleName(e, policy).Found
}

func (r *Resolver) exprName(v jsx.Value, policy NamePolicy, res *NameSearch) (NameSource, bool) {
	switch v.Kind {
	case jsx.ValueString, jsx.ValueNumber:
		text, _ := v.Text()
		return NameFromText, MeaningfulText(text)
	case jsx.ValueConditional:
		if policy.AcceptConditionalLiterals && bothBranchesMeaningful(v) {
			return NameFromConditional, true
		}
		res.Unresolved++
	case jsx.ValueExpr:
		res.Unresolved++
	}
	return 0, false
}

func (r *Resolver) labelName(e *jsx.Element, policy NamePolicy, res *NameSearch) (NameSource, bool) {
	if e.Attrs.HasSpread() {
		res.Unresolved++
	}
	for _, a := range e.Attrs {
		if a.Spread || !r.isLabelAttribute(a.Name) {
			continue
		}
		v := a.Value
		switch v.Kind {
		case jsx.ValueString, jsx.ValueNumber:
			text, _ := v.Text()
			if strings.TrimSpace(text) != "" {
				return NameFromLabelAttribute, true
			}
			res.EmptyLabels = append(res.EmptyLabels, a)
		case jsx.ValueImplicit, jsx.ValueBool, jsx.ValueNull, jsx.ValueUndefined:
			res.EmptyLabels = append(res.EmptyLabels, a)
		case jsx.ValueConditional:
			if policy.AcceptConditionalLiterals && bothBranchesNonEmpty(v) {
				return NameFromConditional, true
			}
			res.Unresolved++
		case jsx.ValueExpr, jsx.ValueElement:
			if policy.TrustExpressionLabels {
				return NameFromExpressionLabel, true
			}
			res.Unresolved++
		}
	}
	return 0, false
}

// isControlComponent matches an element against control component patterns by its component name
// or by the tag it renders as.
func (r *Resolver) isControlComponent(e *jsx.Element) bool {
	if e.Component && matchName(r.controls, e.Name) {
		return true
	}
	t := r.ElementType(e)
	return !t.IsOpaque() && matchName(r.controls, string(t))
}

func (r *Resolver) isLabelAttribute(name string) bool {
	return slices.ContainsFunc(r.labelAttrs, func(v string) bool { return strings.EqualFold(v, name) })
}

func (s NameSearch) found(src NameSource, at jsx.Node) NameSearch {
	s.Found = true
	s.Source = src
	s.At = at
	return s
}

func bothBranchesMeaningful(v jsx.Value) bool {
	for _, b := range v.Branches() {
		if b.Kind != jsx.ValueString && b.Kind != jsx.ValueNumber {
			return false
		}
		if text, _ := b.Text(); !MeaningfulText(text) {
			return false
		}
	}
	return true
}

func bothBranchesNonEmpty(v jsx.Value) bool {
	for _, b := range v.Branches() {
		if b.Kind != jsx.ValueString && b.Kind != jsx.ValueNumber {
			return false
		}
		if text, _ := b.Text(); strings.TrimSpace(text) == "" {
			return false
		}
	}
	return true
}

// MeaningfulText tells if text can be announced: not blank and not made of emoji only.
func MeaningfulText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !gomoji.ContainsEmoji(s) {
		return true
	}
	rest := strings.TrimFunc(gomoji.RemoveEmojis(s), isEmojiGlue)
	return rest != ""
}

// IsEmojiOnly tells if non-blank text consists of emoji only.
func IsEmojiOnly(s string) bool {
	return strings.TrimSpace(s) != "" && !MeaningfulText(s)
}

func isEmojiGlue(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200d' || r == '\ufe0f' || r == '\ufe0e' || r == '\u20e3'
}
