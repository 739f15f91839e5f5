package checks

import (
	"fmt"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

type ariaActivedescendantHasTabindex struct{}

func (ariaActivedescendantHasTabindex) Rule() rules.Rule {
	return rules.AF100AriaActivedescendantHasTabindex
}

func (c ariaActivedescendantHasTabindex) Check(p *Pass, e *jsx.Element) {
	if !e.Attrs.Has("aria-activedescendant") {
		return
	}
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) {
		return
	}

	idx, known := semantics.TabIndex(e.Attrs)
	switch known {
	case jsx.Unknown:
		return
	case jsx.Yes:
		if idx >= -1 {
			return
		}
	case jsx.No:
		if semantics.NativelyInteractive(tag, e.Attrs) != jsx.No {
			return
		}
	}
	p.Report(c.Rule(), e.Pos, "")
}

type ariaProps struct{}

func (ariaProps) Rule() rules.Rule { return rules.AF105AriaProps }

func (c ariaProps) Check(p *Pass, e *jsx.Element) {
	for _, a := range e.Attrs {
		if a.Spread || !strings.HasPrefix(a.Name, "aria-") {
			continue
		}
		if _, ok := taxonomy.LookupAria(a.Name); ok && a.Name == strings.ToLower(a.Name) {
			continue
		}

		msg := a.Name + ": This attribute is an invalid ARIA attribute."
		if sugg := semantics.Suggest(a.Name, taxonomy.AriaAttrNames()); len(sugg) > 0 {
			msg += " Did you mean to use " + strings.Join(sugg, ", ") + "?"
		}
		p.Report(c.Rule(), a.Pos, msg)
	}
}

type ariaProptypes struct{}

func (ariaProptypes) Rule() rules.Rule { return rules.AF110AriaProptypes }

func (c ariaProptypes) Check(p *Pass, e *jsx.Element) {
	for _, a := range e.Attrs {
		if a.Spread {
			continue
		}
		name := strings.ToLower(a.Name)
		if !strings.HasPrefix(name, "aria-") {
			continue
		}
		def, ok := taxonomy.LookupAria(name)
		if !ok || a.Value.Dropped() || !a.Value.IsLiteral() {
			continue
		}
		if def.Valid(ariaValue(a.Value)) {
			continue
		}
		p.Report(c.Rule(), a.Pos, proptypeMessage(a.Name, def))
	}
}

// ariaValue reads a literal the way the attribute type check expects it: boolean words become
// booleans.
func ariaValue(v jsx.Value) taxonomy.AriaValue {
	switch v.Kind {
	case jsx.ValueImplicit:
		return taxonomy.AriaValue{IsBool: true, Bool: true}
	case jsx.ValueBool:
		return taxonomy.AriaValue{IsBool: true, Bool: v.Bool}
	case jsx.ValueString:
		switch v.Str {
		case "true":
			return taxonomy.AriaValue{IsBool: true, Bool: true}
		case "false":
			return taxonomy.AriaValue{IsBool: true, Bool: false}
		}
	}
	text, _ := v.Text()
	return taxonomy.AriaValue{Str: text}
}

func proptypeMessage(name string, def taxonomy.AriaAttr) string {
	switch def.Type {
	case taxonomy.AttrTristate:
		return fmt.Sprintf(`The value for %s must be a boolean or the string "mixed".`, name)
	case taxonomy.AttrToken:
		return fmt.Sprintf("The value for %s must be a single token from the following: %s.", name, strings.Join(def.Values, ", "))
	case taxonomy.AttrTokenList:
		return fmt.Sprintf("The value for %s must be a list of one or more tokens from the following: %s.", name, strings.Join(def.Values, ", "))
	case taxonomy.AttrIDList:
		return fmt.Sprintf("The value for %s must be a list of strings that represent DOM element IDs (idlist)", name)
	case taxonomy.AttrID:
		return fmt.Sprintf("The value for %s must be a string that represents a DOM element ID", name)
	default:
		return fmt.Sprintf("The value for %s must be a %s.", name, def.Type)
	}
}

type ariaRole struct {
	opts struct {
		AllowedInvalidRoles []string `yaml:"allowedInvalidRoles"`
		IgnoreNonDOM        bool     `yaml:"ignoreNonDOM"`
	}
}

func (*ariaRole) Rule() rules.Rule { return rules.AF115AriaRole }
func (c *ariaRole) Options() any  { return &c.opts }

func (c *ariaRole) Check(p *Pass, e *jsx.Element) {
	if c.opts.IgnoreNonDOM && !isDOM(p.Resolver.ElementType(e)) {
		return
	}
	a := e.Attrs.Get("role")
	if a == nil || !a.Value.IsLiteral() || a.Value.Dropped() {
		return
	}

	text, _ := a.Value.Text()
	var bad []string
	for _, tok := range strings.Split(text, " ") {
		if !semantics.ValidRole(tok, c.opts.AllowedInvalidRoles) {
			bad = append(bad, tok)
		}
	}
	if len(bad) == 0 {
		return
	}

	msg := "Elements with ARIA roles must use a valid, non-abstract ARIA role."
	for _, tok := range bad {
		if tok == "" {
			continue
		}
		if sugg := semantics.SuggestRoles(tok); len(sugg) > 0 {
			msg += fmt.Sprintf(" Did you mean %s instead of %q?", strings.Join(sugg, " or "), tok)
		}
	}
	p.Report(c.Rule(), a.Pos, msg)
}

type noAriaHiddenOnFocusable struct{}

func (noAriaHiddenOnFocusable) Rule() rules.Rule { return rules.AF120NoAriaHiddenOnFocusable }

func (c noAriaHiddenOnFocusable) Check(p *Pass, e *jsx.Element) {
	hidden := e.Attrs.Get("aria-hidden")
	if hidden == nil || hidden.Value.IsTrue() != jsx.Yes {
		return
	}
	if semantics.IsFocusable(p.Resolver.ElementType(e), e.Attrs) == jsx.Yes {
		p.Report(c.Rule(), hidden.Pos, "")
	}
}

type noRedundantRoles struct {
	opts map[string][]string
}

func newNoRedundantRoles() Check {
	return &noRedundantRoles{opts: map[string][]string{"nav": {"navigation"}}}
}

func (*noRedundantRoles) Rule() rules.Rule { return rules.AF125NoRedundantRoles }
func (c *noRedundantRoles) Options() any  { return &c.opts }

func (c *noRedundantRoles) Check(p *Pass, e *jsx.Element) {
	tag := p.Resolver.ElementType(e)
	exp := p.Resolver.ExplicitRole(e.Attrs)
	if exp.State != semantics.RoleResolved {
		return
	}
	implicit := p.Resolver.ImplicitRole(tag, e.Attrs)
	if implicit == "" || implicit != exp.Role {
		return
	}
	if listed(c.opts[string(tag)], implicit) {
		return
	}
	p.Reportf(c.Rule(), e.Pos, "The element %s has an implicit role of %s. Defining this explicitly is redundant and should be avoided.", tag, implicit)
}

type preferTagOverRole struct{}

func (preferTagOverRole) Rule() rules.Rule { return rules.AF130PreferTagOverRole }

func (c preferTagOverRole) Check(p *Pass, e *jsx.Element) {
	a := e.Attrs.Get("role")
	if a == nil {
		return
	}
	text, ok := literalText(a.Value)
	if !ok || text == "" {
		return
	}
	role := text[strings.LastIndexByte(text, ' ')+1:]

	refs := taxonomy.RoleElements(role)
	if len(refs) == 0 {
		return
	}
	name := tagOf(p, e)
	tags := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name == name {
			return
		}
		tags = append(tags, ref.String())
	}
	p.Reportf(c.Rule(), e.Pos, "Use %s instead of the %q role to ensure accessibility across all devices.", joinOr(tags), role)
}

type roleSupportsAriaProps struct{}

func (roleSupportsAriaProps) Rule() rules.Rule { return rules.AF135RoleSupportsAriaProps }

func (c roleSupportsAriaProps) Check(p *Pass, e *jsx.Element) {
	tag := p.Resolver.ElementType(e)

	var (
		role     string
		implicit bool
	)
	switch a, pr := e.Attr("role"); pr {
	case jsx.Present:
		text, ok := literalText(a.Value)
		if !ok {
			return
		}
		role = text
	case jsx.Possible:
		return
	default:
		role = p.Resolver.ImplicitRole(tag, e.Attrs)
		implicit = role != ""
	}
	if _, ok := taxonomy.LookupRole(role); !ok {
		return
	}

	for _, a := range e.Attrs {
		if a.Spread || a.Value.Dropped() || a.Name != strings.ToLower(a.Name) {
			continue
		}
		if _, ok := taxonomy.LookupAria(a.Name); !ok {
			continue
		}
		if taxonomy.RoleSupportsProp(role, a.Name) {
			continue
		}
		if implicit {
			p.Reportf(c.Rule(), a.Pos, "The attribute %s is not supported by the role %s. This role is implicit on the element %s.", a.Name, role, tag)
			continue
		}
		p.Reportf(c.Rule(), a.Pos, "The attribute %s is not supported by the role %s.", a.Name, role)
	}
}

type scope struct{}

func (scope) Rule() rules.Rule { return rules.AF140Scope }

func (c scope) Check(p *Pass, e *jsx.Element) {
	a := e.Attrs.Get("scope")
	if a == nil {
		return
	}
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) || tag == "th" {
		return
	}
	p.Report(c.Rule(), a.Pos, "")
}
