package checks

import (
	"fmt"
	"slices"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

type controlHasAssociatedLabel struct {
	opts struct {
		LabelAttributes   []string `yaml:"labelAttributes"`
		ControlComponents []string `yaml:"controlComponents"`
		IgnoreElements    []string `yaml:"ignoreElements"`
		IgnoreRoles       []string `yaml:"ignoreRoles"`
		Depth             int      `yaml:"depth"`
	}

	resolver *semantics.Resolver
	ignore   []string
}

func (*controlHasAssociatedLabel) Rule() rules.Rule { return rules.AF020ControlHasAssociatedLabel }
func (c *controlHasAssociatedLabel) Options() any  { return &c.opts }

func (c *controlHasAssociatedLabel) Prepare(r *semantics.Resolver) error {
	if c.opts.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.opts.Depth)
	}
	c.resolver = r.
		WithLabelAttributes(c.opts.LabelAttributes...).
		WithControlComponents(c.opts.ControlComponents...).
		WithSearchDepth(c.opts.Depth)
	// <link> is interactive by its tag but is never rendered.
	c.ignore = slices.Concat(c.opts.IgnoreElements, []string{"link"})
	return nil
}

func (c *controlHasAssociatedLabel) Check(p *Pass, e *jsx.Element) {
	name := tagOf(p, e)
	if listed(c.ignore, name) {
		return
	}
	role, _ := e.Attrs.Text("role")
	if role != "" && listed(c.opts.IgnoreRoles, role) {
		return
	}

	tag := c.resolver.ElementType(e)
	if semantics.IsHidden(tag, e.Attrs) != jsx.No {
		return
	}
	if !c.isControl(tag, name, e.Attrs) {
		return
	}

	search := c.resolver.FindAccessibleName(e, semantics.NamePolicy{})
	if search.Found || search.Inconclusive() {
		return
	}
	p.Report(c.Rule(), e.Pos, "")
}

func (c *controlHasAssociatedLabel) isControl(tag semantics.ElementType, name string, attrs jsx.Attrs) bool {
	if semantics.NativelyInteractive(tag, attrs) == jsx.Yes {
		return true
	}
	if isDOM(tag) {
		if exp := c.resolver.ExplicitRole(attrs); exp.State == semantics.RoleResolved && taxonomy.IsWidgetRole(exp.Role) {
			return true
		}
	}
	return matchAny(c.opts.ControlComponents, name)
}

const (
	assertHTMLFor = "htmlFor"
	assertNesting = "nesting"
	assertBoth    = "both"
	assertEither  = "either"
)

var nativeControls = []string{"input", "meter", "output", "progress", "select", "textarea"}

type labelHasAssociatedControl struct {
	opts struct {
		LabelComponents   []string `yaml:"labelComponents"`
		LabelAttributes   []string `yaml:"labelAttributes"`
		ControlComponents []string `yaml:"controlComponents"`
		Assert            string   `yaml:"assert"`
		Depth             int      `yaml:"depth"`
	}

	resolver *semantics.Resolver
	controls []string
}

func newLabelHasAssociatedControl() Check {
	c := &labelHasAssociatedControl{}
	c.opts.Assert = assertEither
	return c
}

func (*labelHasAssociatedControl) Rule() rules.Rule { return rules.AF045LabelHasAssociatedControl }
func (c *labelHasAssociatedControl) Options() any  { return &c.opts }

func (c *labelHasAssociatedControl) Prepare(r *semantics.Resolver) error {
	switch c.opts.Assert {
	case assertHTMLFor, assertNesting, assertBoth, assertEither:
	default:
		return fmt.Errorf("unknown assert %q, expected one of %s, %s, %s, %s",
			c.opts.Assert, assertHTMLFor, assertNesting, assertBoth, assertEither)
	}
	if c.opts.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.opts.Depth)
	}
	c.resolver = r.
		WithLabelAttributes(c.opts.LabelAttributes...).
		WithControlComponents(c.opts.ControlComponents...).
		WithSearchDepth(c.opts.Depth)
	c.controls = slices.Concat(nativeControls, c.opts.ControlComponents)
	return nil
}

func (c *labelHasAssociatedControl) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); name != "label" && !matchAny(c.opts.LabelComponents, name) {
		return
	}

	search := c.resolver.FindAccessibleName(e, semantics.NamePolicy{})
	if !search.Found {
		if !search.Inconclusive() {
			p.Report(c.Rule(), e.Pos, "A form label must have accessible text.")
		}
		return
	}

	hasFor := c.resolver.HasForAttribute(e.Attrs) != jsx.No
	nested := c.resolver.ContainsComponent(e, c.controls, c.resolver.SearchDepth())

	switch c.opts.Assert {
	case assertHTMLFor:
		if !hasFor {
			p.Report(c.Rule(), e.Pos, "A form label must have a valid htmlFor attribute.")
		}
	case assertNesting:
		if !nested {
			p.Report(c.Rule(), e.Pos, "A form label must have an associated control as a descendant.")
		}
	case assertBoth:
		if !hasFor || !nested {
			p.Report(c.Rule(), e.Pos, "A form label must have both a valid htmlFor attribute and a control as a descendant.")
		}
	case assertEither:
		if !hasFor && !nested {
			p.Report(c.Rule(), e.Pos, "A form label must either have a valid htmlFor attribute or a control as a descendant.")
		}
	}
}
