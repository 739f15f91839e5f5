package checks

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

const (
	aspectNoHref       = "noHref"
	aspectInvalidHref  = "invalidHref"
	aspectPreferButton = "preferButton"
)

var jsHref = regexp.MustCompile(`^\W*?javascript:`)

type anchorIsValid struct {
	opts struct {
		Components  []string `yaml:"components"`
		SpecialLink []string `yaml:"specialLink"`
		Aspects     []string `yaml:"aspects"`
	}
}

func newAnchorIsValid() Check {
	c := &anchorIsValid{}
	c.opts.Aspects = []string{aspectNoHref, aspectInvalidHref, aspectPreferButton}
	return c
}

func (*anchorIsValid) Rule() rules.Rule { return rules.AF150AnchorIsValid }
func (c *anchorIsValid) Options() any  { return &c.opts }

func (c *anchorIsValid) Prepare(*semantics.Resolver) error {
	for _, a := range c.opts.Aspects {
		switch a {
		case aspectNoHref, aspectInvalidHref, aspectPreferButton:
		default:
			return fmt.Errorf("unknown aspect %q, expected one of %s, %s, %s", a, aspectNoHref, aspectInvalidHref, aspectPreferButton)
		}
	}
	return nil
}

func (c *anchorIsValid) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); name != "a" && !listed(c.opts.Components, name) {
		return
	}

	var (
		hasHref bool
		invalid bool
	)
	for _, prop := range slices.Concat([]string{"href"}, c.opts.SpecialLink) {
		a := e.Attrs.Get(prop)
		if a == nil || a.Value.Dropped() {
			continue
		}
		hasHref = true
		if a.Value.Kind == jsx.ValueString && invalidHref(a.Value.Str) {
			invalid = true
		}
	}
	onClick := e.Attrs.Has("onClick")

	if !hasHref {
		if e.Attrs.HasSpread() {
			return
		}
		switch {
		case onClick && c.aspect(aspectPreferButton):
			p.Report(c.Rule(), e.Pos, preferButtonMessage)
		case c.aspect(aspectNoHref):
			p.Report(c.Rule(), e.Pos, "The href attribute is required for an anchor to be keyboard accessible. Provide a valid, navigable address as the href value. If you cannot provide an href, but still need the element to resemble a link, use a button and change it with appropriate styles.")
		}
		return
	}

	if !invalid {
		return
	}
	switch {
	case onClick && c.aspect(aspectPreferButton):
		p.Report(c.Rule(), e.Pos, preferButtonMessage)
	case c.aspect(aspectInvalidHref):
		p.Report(c.Rule(), e.Pos, "The href attribute requires a valid value to be accessible. Provide a valid, navigable address as the href value. If you cannot provide a valid href, but still need the element to resemble a link, use a button and change it with appropriate styles.")
	}
}

const preferButtonMessage = "Anchor used as a button. Anchors are primarily expected to navigate. Use the button element instead."

func (c *anchorIsValid) aspect(name string) bool {
	return listed(c.opts.Aspects, name)
}

func invalidHref(href string) bool {
	return href == "" || href == "#" || jsHref.MatchString(href)
}

var keyHandlers = []string{"onKeyDown", "onKeyUp", "onKeyPress"}

type clickEventsHaveKeyEvents struct{}

func (clickEventsHaveKeyEvents) Rule() rules.Rule { return rules.AF155ClickEventsHaveKeyEvents }

func (c clickEventsHaveKeyEvents) Check(p *Pass, e *jsx.Element) {
	if !e.Attrs.Has("onClick") {
		return
	}
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) {
		return
	}

	cl := p.Resolver.Classify(tag, e.Attrs)
	if cl.Hidden != jsx.No || cl.Verdict == semantics.Presentational {
		return
	}
	if cl.Explicit.State == semantics.RoleIndeterminate {
		return
	}
	if semantics.NativelyInteractive(tag, e.Attrs) != jsx.No {
		return
	}
	for _, h := range keyHandlers {
		if presence(e.Attrs, h) != jsx.No {
			return
		}
	}
	p.Report(c.Rule(), e.Pos, "")
}

type interactiveSupportsFocus struct {
	opts struct {
		Tabbable []string `yaml:"tabbable"`
	}
}

var interactiveHandlers = taxonomy.Handlers(taxonomy.HandlersMouse, taxonomy.HandlersKeyboard)

func newInteractiveSupportsFocus() Check {
	return &interactiveSupportsFocus{}
}

func (*interactiveSupportsFocus) Rule() rules.Rule { return rules.AF160InteractiveSupportsFocus }
func (c *interactiveSupportsFocus) Options() any  { return &c.opts }

func (c *interactiveSupportsFocus) Prepare(*semantics.Resolver) error {
	for _, role := range c.opts.Tabbable {
		if !taxonomy.IsValidRole(role) || !taxonomy.IsWidgetRole(role) {
			return fmt.Errorf("%q is not an interactive role", role)
		}
	}
	return nil
}

func (c *interactiveSupportsFocus) Check(p *Pass, e *jsx.Element) {
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) {
		return
	}
	if !slices.ContainsFunc(interactiveHandlers, e.Attrs.Has) {
		return
	}

	cl := p.Resolver.Classify(tag, e.Attrs)
	if cl.Disabled != jsx.No || cl.Hidden != jsx.No || cl.Verdict == semantics.Presentational {
		return
	}
	if cl.Explicit.State != semantics.RoleResolved || !taxonomy.IsWidgetRole(cl.Explicit.Role) {
		return
	}
	if defaults, _ := taxonomy.ElementDefaults(string(tag)); defaults.Category != taxonomy.CategoryStatic {
		return
	}
	if semantics.NativelyInteractive(tag, e.Attrs) != jsx.No {
		return
	}
	if _, known := semantics.TabIndex(e.Attrs); known != jsx.No {
		return
	}

	role := cl.Explicit.Raw
	if listed(c.opts.Tabbable, role) {
		p.Reportf(c.Rule(), e.Pos, "Elements with the '%s' interactive role must be tabbable.", role)
		return
	}
	p.Reportf(c.Rule(), e.Pos, "Elements with the '%s' interactive role must be focusable.", role)
}

type mouseEventsHaveKeyEvents struct {
	opts struct {
		HoverInHandlers  []string `yaml:"hoverInHandlers"`
		HoverOutHandlers []string `yaml:"hoverOutHandlers"`
	}
}

func newMouseEventsHaveKeyEvents() Check {
	c := &mouseEventsHaveKeyEvents{}
	c.opts.HoverInHandlers = []string{"onMouseOver"}
	c.opts.HoverOutHandlers = []string{"onMouseOut"}
	return c
}

func (*mouseEventsHaveKeyEvents) Rule() rules.Rule { return rules.AF165MouseEventsHaveKeyEvents }
func (c *mouseEventsHaveKeyEvents) Options() any  { return &c.opts }

func (c *mouseEventsHaveKeyEvents) Check(p *Pass, e *jsx.Element) {
	if e.Component || !taxonomy.IsDOM(e.Name) {
		return
	}
	c.pair(p, e, c.opts.HoverInHandlers, "onFocus")
	c.pair(p, e, c.opts.HoverOutHandlers, "onBlur")
}

func (c *mouseEventsHaveKeyEvents) pair(p *Pass, e *jsx.Element, handlers []string, key string) {
	for _, h := range handlers {
		if e.Attrs.Rendered(h) != jsx.Yes {
			continue
		}
		if e.Attrs.Rendered(key) == jsx.No {
			p.Reportf(c.Rule(), e.Attrs.Get(h).Pos, "%s must be accompanied by %s for accessibility.", h, key)
		}
		return
	}
}

type noAccessKey struct{}

func (noAccessKey) Rule() rules.Rule { return rules.AF170NoAccessKey }

func (c noAccessKey) Check(p *Pass, e *jsx.Element) {
	a := e.Attrs.Get("accessKey")
	if a == nil {
		return
	}
	if truthy(a.Value) != jsx.No {
		p.Report(c.Rule(), a.Pos, "")
	}
}

type noAutofocus struct {
	opts struct {
		IgnoreNonDOM bool `yaml:"ignoreNonDOM"`
	}
}

func (*noAutofocus) Rule() rules.Rule { return rules.AF175NoAutofocus }
func (c *noAutofocus) Options() any  { return &c.opts }

func (c *noAutofocus) Check(p *Pass, e *jsx.Element) {
	if c.opts.IgnoreNonDOM && !isDOM(p.Resolver.ElementType(e)) {
		return
	}
	for _, a := range e.Attrs {
		if a.Spread || a.Name != "autoFocus" || a.Value.Dropped() {
			continue
		}
		if (a.Value.Kind == jsx.ValueBool && !a.Value.Bool) || (a.Value.Kind == jsx.ValueString && a.Value.Str == "false") {
			continue
		}
		p.Report(c.Rule(), a.Pos, "")
	}
}

type noNoninteractiveElementInteractions struct {
	opts struct {
		Handlers []string `yaml:"handlers"`

		// Allowed maps tags to handlers they are allowed to have.
		Allowed map[string][]string `yaml:",inline"`
	}
}

func newNoNoninteractiveElementInteractions() Check {
	c := &noNoninteractiveElementInteractions{}
	c.opts.Handlers = taxonomy.Handlers(
		taxonomy.HandlersFocus,
		taxonomy.HandlersImage,
		taxonomy.HandlersKeyboard,
		taxonomy.HandlersMouse,
	)
	return c
}

func (*noNoninteractiveElementInteractions) Rule() rules.Rule {
	return rules.AF180NoNoninteractiveElementInteractions
}
func (c *noNoninteractiveElementInteractions) Options() any { return &c.opts }

func (c *noNoninteractiveElementInteractions) Check(p *Pass, e *jsx.Element) {
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) {
		return
	}

	attrs := e.Attrs
	if allowed, ok := c.opts.Allowed[string(tag)]; ok {
		attrs = slices.DeleteFunc(slices.Clone(attrs), func(a *jsx.Attr) bool {
			return a.Spread || listed(allowed, a.Name)
		})
	}
	if anyRendered(attrs, c.opts.Handlers) != jsx.Yes {
		return
	}

	cl := p.Resolver.Classify(tag, attrs)
	if cl.ContentEditable != jsx.No || cl.Hidden != jsx.No || cl.Verdict == semantics.Presentational {
		return
	}
	if abstractRole(cl.Explicit) {
		return
	}
	if cl.Verdict != semantics.NonInteractive || cl.IsStatic() {
		return
	}
	p.Report(c.Rule(), e.Pos, "")
}

// abstractRole tells if the role attribute names an abstract role.
func abstractRole(exp semantics.ExplicitRole) bool {
	return exp.State == semantics.RoleInvalid && taxonomy.IsAbstractRole(strings.ToLower(strings.TrimSpace(exp.Raw)))
}

type noNoninteractiveTabindex struct {
	opts struct {
		Tags                  []string `yaml:"tags"`
		Roles                 []string `yaml:"roles"`
		AllowExpressionValues bool     `yaml:"allowExpressionValues"`
	}
}

func newNoNoninteractiveTabindex() Check {
	return &noNoninteractiveTabindex{}
}

func (*noNoninteractiveTabindex) Rule() rules.Rule { return rules.AF185NoNoninteractiveTabindex }
func (c *noNoninteractiveTabindex) Options() any  { return &c.opts }

func (c *noNoninteractiveTabindex) Check(p *Pass, e *jsx.Element) {
	idx, known := semantics.TabIndex(e.Attrs)
	if known != jsx.Yes {
		return
	}
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) || listed(c.opts.Tags, string(tag)) {
		return
	}

	role, pr := e.Attr("role")
	switch pr {
	case jsx.Possible:
		return
	case jsx.Present:
		if text, ok := literalText(role.Value); ok && listed(c.opts.Roles, text) {
			return
		}
		if !role.Value.IsLiteral() && c.opts.AllowExpressionValues {
			return
		}
	}

	if semantics.NativelyInteractive(tag, e.Attrs) == jsx.Yes {
		return
	}
	if exp := p.Resolver.ExplicitRole(e.Attrs); exp.State == semantics.RoleResolved && taxonomy.IsWidgetRole(exp.Role) {
		return
	}
	if idx >= 0 {
		p.Report(c.Rule(), e.Attrs.Get("tabIndex").Pos, "")
	}
}

type noStaticElementInteractions struct {
	opts struct {
		Handlers              []string `yaml:"handlers"`
		AllowExpressionValues bool     `yaml:"allowExpressionValues"`
	}
}

func newNoStaticElementInteractions() Check {
	c := &noStaticElementInteractions{}
	c.opts.Handlers = taxonomy.Handlers(taxonomy.HandlersFocus, taxonomy.HandlersKeyboard, taxonomy.HandlersMouse)
	return c
}

func (*noStaticElementInteractions) Rule() rules.Rule {
	return rules.AF190NoStaticElementInteractions
}
func (c *noStaticElementInteractions) Options() any { return &c.opts }

func (c *noStaticElementInteractions) Check(p *Pass, e *jsx.Element) {
	tag := p.Resolver.ElementType(e)
	if !isDOM(tag) {
		return
	}
	if anyRendered(e.Attrs, c.opts.Handlers) != jsx.Yes {
		return
	}

	cl := p.Resolver.Classify(tag, e.Attrs)
	if cl.Hidden != jsx.No || cl.Verdict == semantics.Presentational || abstractRole(cl.Explicit) {
		return
	}

	switch {
	case cl.IsStatic():
	case cl.Reason == semantics.ReasonRoleUnknown:
		// A role written as an expression over a static element.
		if cl.Explicit.Attr == nil || c.opts.AllowExpressionValues {
			return
		}
		if defaults, _ := taxonomy.ElementDefaults(string(tag)); defaults.Category != taxonomy.CategoryStatic {
			return
		}
		if semantics.NativelyInteractive(tag, e.Attrs) != jsx.No {
			return
		}
	default:
		return
	}
	p.Report(c.Rule(), e.Pos, "")
}

type tabindexNoPositive struct{}

func (tabindexNoPositive) Rule() rules.Rule { return rules.AF195TabindexNoPositive }

func (c tabindexNoPositive) Check(p *Pass, e *jsx.Element) {
	a := e.Attrs.Get("tabIndex")
	if a == nil {
		return
	}
	if n, ok := literalNumber(a.Value); ok && n > 0 {
		p.Report(c.Rule(), a.Pos, "")
	}
}

// literalNumber converts a literal to a number the way Number() does.
func literalNumber(v jsx.Value) (float64, bool) {
	switch v.Kind {
	case jsx.ValueNumber:
		return v.Num, true
	case jsx.ValueImplicit:
		return 1, true
	case jsx.ValueBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	case jsx.ValueString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
