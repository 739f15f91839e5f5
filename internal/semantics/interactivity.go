package semantics

import (
	"fmt"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

// Verdict is the interactivity class of an element.
type Verdict int

const (
	Indeterminate Verdict = iota
	Interactive
	NonInteractive
	Presentational
)

var verdictNames = map[Verdict]string{
	Indeterminate:  "indeterminate",
	Interactive:    "interactive",
	NonInteractive: "non-interactive",
	Presentational: "presentational",
}

func (v Verdict) String() string {
	s, ok := verdictNames[v]
	if !ok {
		return fmt.Sprintf("verdict-invalid(%d)", v)
	}
	return s
}

// Reason tells which rule decided a verdict.
type Reason int

const (
	reasonInvalid Reason = iota
	ReasonHidden
	ReasonPresentationRole
	ReasonWidgetRole
	ReasonInteractiveElement
	ReasonNonWidgetRole
	ReasonNonInteractiveElement
	ReasonStaticElement
	ReasonRoleUnknown
	ReasonAttributeUnknown
	ReasonOpaqueComponent
	ReasonUnknownElement
)

var reasonNames = map[Reason]string{
	ReasonHidden:                "hidden from assistive technology",
	ReasonPresentationRole:      "presentation role",
	ReasonWidgetRole:            "widget role",
	ReasonInteractiveElement:    "interactive element",
	ReasonNonWidgetRole:         "non-widget role",
	ReasonNonInteractiveElement: "non-interactive element",
	ReasonStaticElement:         "static element",
	ReasonRoleUnknown:           "role is not statically known",
	ReasonAttributeUnknown:      "interactivity attribute is not statically known",
	ReasonOpaqueComponent:       "unmapped component",
	ReasonUnknownElement:        "unknown element",
}

func (r Reason) String() string {
	s, ok := reasonNames[r]
	if !ok {
		return fmt.Sprintf("reason-invalid(%d)", r)
	}
	return s
}

// Classification is the outcome of classifying an element.
type Classification struct {
	Verdict Verdict
	Reason  Reason

	// Role is the effective role, empty when there is none or it is not known.
	Role     string
	Explicit ExplicitRole
	Implicit string

	Hidden          jsx.Tri
	Disabled        jsx.Tri
	ContentEditable jsx.Tri
}

// IsStatic tells if the element is a known tag without semantics of its own and without a role.
func (c Classification) IsStatic() bool {
	return c.Reason == ReasonStaticElement
}

// Classify decides interactivity of a tag with attributes. Checks go in order and the first
// one to match wins:
//
//  1. hidden, or presentation/none role: Presentational
//  2. valid explicit widget role: Interactive
//  3. natively interactive element: Interactive
//  4. explicit or implicit non-widget role: NonInteractive
//  5. known element: NonInteractive
//  6. anything else: Indeterminate
//
// Disabled and content editable states are reported but never change the verdict.
func (r *Resolver) Classify(tag ElementType, attrs jsx.Attrs) Classification {
	res := Classification{
		Explicit:        r.ExplicitRole(attrs),
		Implicit:        r.ImplicitRole(tag, attrs),
		Hidden:          IsHidden(tag, attrs),
		Disabled:        IsDisabled(attrs),
		ContentEditable: IsContentEditable(attrs),
	}
	exp := res.Explicit

	switch exp.State {
	case RoleResolved:
		res.Role = exp.Role
	case RoleAbsent, RoleInvalid:
		res.Role = res.Implicit
	}

	if res.Hidden == jsx.Yes {
		return res.with(Presentational, ReasonHidden)
	}
	if taxonomy.IsPresentationRole(res.Role) {
		return res.with(Presentational, ReasonPresentationRole)
	}

	if exp.State == RoleResolved && taxonomy.IsWidgetRole(exp.Role) {
		return res.with(Interactive, ReasonWidgetRole)
	}

	native := NativelyInteractive(tag, attrs)
	if native == jsx.Yes {
		return res.with(Interactive, ReasonInteractiveElement)
	}

	switch exp.State {
	case RoleResolved:
		return res.with(NonInteractive, ReasonNonWidgetRole)
	case RoleIndeterminate:
		return res.with(Indeterminate, ReasonRoleUnknown)
	}
	if res.Implicit != "" && taxonomy.IsValidRole(res.Implicit) && !taxonomy.IsWidgetRole(res.Implicit) {
		return res.with(NonInteractive, ReasonNonWidgetRole)
	}

	if native == jsx.Unknown && !tag.IsOpaque() {
		return res.with(Indeterminate, ReasonAttributeUnknown)
	}

	defaults, ok := taxonomy.ElementDefaults(string(tag))
	switch {
	case ok && defaults.Category == taxonomy.CategoryStatic:
		return res.with(NonInteractive, ReasonStaticElement)
	case ok:
		return res.with(NonInteractive, ReasonNonInteractiveElement)
	case tag.IsOpaque():
		return res.with(Indeterminate, ReasonOpaqueComponent)
	default:
		return res.with(Indeterminate, ReasonUnknownElement)
	}
}

// ClassifyElement resolves the element type and classifies the element.
func (r *Resolver) ClassifyElement(e *jsx.Element) Classification {
	return r.Classify(r.ElementType(e), e.Attrs)
}

func (c Classification) with(v Verdict, reason Reason) Classification {
	c.Verdict = v
	c.Reason = reason
	return c
}
