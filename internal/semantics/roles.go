package semantics

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

// RoleState tells what is known about the role attribute.
type RoleState int

const (
	// RoleAbsent means there is no role attribute and no spread could have set one.
	RoleAbsent RoleState = iota

	// RoleIndeterminate means the role is set by an expression or possibly by a spread.
	RoleIndeterminate

	// RoleResolved means a valid non-abstract role token was found.
	RoleResolved

	// RoleInvalid means a literal role was written but none of its tokens is a valid role.
	RoleInvalid
)

func (s RoleState) String() string {
	switch s {
	case RoleAbsent:
		return "absent"
	case RoleIndeterminate:
		return "indeterminate"
	case RoleResolved:
		return "resolved"
	case RoleInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("role-state-invalid(%d)", s)
	}
}

// ExplicitRole is the result of reading the role attribute.
type ExplicitRole struct {
	State RoleState

	// Role is the resolved token, or the last written token when the role is invalid.
	Role string

	// Raw is the literal as written.
	Raw string

	// Branches are resolved tokens of a conditional with two literal branches.
	Branches []string

	Attr *jsx.Attr
}

// ExplicitRole reads the role attribute. A literal is a whitespace separated fallback list
// where the first valid non-abstract token wins.
func (r *Resolver) ExplicitRole(attrs jsx.Attrs) ExplicitRole {
	a, p := attrs.Lookup("role")
	switch p {
	case jsx.Absent:
		return ExplicitRole{State: RoleAbsent}
	case jsx.Possible:
		return ExplicitRole{State: RoleIndeterminate}
	}

	if a.Value.Dropped() {
		return ExplicitRole{State: RoleAbsent, Attr: a}
	}
	if text, ok := a.Value.Text(); ok {
		res := resolveRoleText(text)
		res.Attr = a
		return res
	}

	res := ExplicitRole{State: RoleIndeterminate, Raw: a.Value.String(), Attr: a}
	if a.Value.Kind == jsx.ValueConditional {
		for _, b := range a.Value.Branches() {
			if text, ok := b.Text(); ok {
				res.Branches = append(res.Branches, resolveRoleText(text).Role)
			}
		}
	}
	return res
}

func resolveRoleText(text string) ExplicitRole {
	res := ExplicitRole{Raw: text}
	tokens := strings.Fields(text)
	for _, tok := range tokens {
		if lower := strings.ToLower(tok); taxonomy.IsValidRole(lower) {
			res.State = RoleResolved
			res.Role = lower
			return res
		}
	}
	res.State = RoleInvalid
	if len(tokens) > 0 {
		res.Role = tokens[len(tokens)-1]
	}
	return res
}

// RoleTokens splits a role literal into tokens.
func RoleTokens(text string) []string {
	return strings.Fields(text)
}

// ValidRole tells if a token is a usable role: known and non-abstract, or allowed by the caller.
func ValidRole(token string, allow []string) bool {
	return taxonomy.IsValidRole(token) || slices.Contains(allow, token)
}

// SuggestRoles proposes valid roles close to a mistyped token.
func SuggestRoles(token string) []string {
	return Suggest(token, taxonomy.ConcreteRoles())
}

// ImplicitRole returns the role an element has without a role attribute. Opaque and
// unknown elements have none.
func (r *Resolver) ImplicitRole(tag ElementType, attrs jsx.Attrs) string {
	defaults, ok := taxonomy.ElementDefaults(string(tag))
	if !ok {
		return ""
	}

	switch tag {
	case "a", "area", "link":
		if attrs.Rendered("href") == jsx.Yes {
			return "link"
		}
		return ""
	case "img":
		if alt := attrs.Get("alt"); alt != nil {
			if text, ok := alt.Value.Text(); ok && alt.Value.Kind == jsx.ValueString && text == "" {
				return "presentation"
			}
		}
		return "img"
	case "input":
		return inputRole(attrs)
	case "menu":
		if typ, ok := attrs.Text("type"); ok && strings.EqualFold(typ, "toolbar") {
			return "toolbar"
		}
	case "menuitem":
		typ, _ := attrs.Text("type")
		switch strings.ToLower(typ) {
		case "command":
			return "menuitem"
		case "checkbox":
			return "menuitemcheckbox"
		case "radio":
			return "menuitemradio"
		default:
			return ""
		}
	case "select":
		if htmlFlag(attrs, "multiple") == jsx.Yes {
			return "listbox"
		}
		if size, ok := attrs.Text("size"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(size)); err == nil && n > 1 {
				return "listbox"
			}
		}
		return "combobox"
	}

	return defaults.Role
}

func inputRole(attrs jsx.Attrs) string {
	typ, _ := attrs.Text("type")
	switch strings.ToLower(typ) {
	case "button", "image", "reset", "submit":
		return "button"
	case "checkbox":
		return "checkbox"
	case "radio":
		return "radio"
	case "range":
		return "slider"
	case "number":
		return "spinbutton"
	case "search":
		return "searchbox"
	case "hidden":
		return "none"
	default:
		return "textbox"
	}
}

// EffectiveRole is the role assistive technology ends up with: a resolved explicit role,
// otherwise the implicit one. Invalid explicit roles are ignored by browsers. The answer is
// unknown when the explicit role is indeterminate.
func (r *Resolver) EffectiveRole(tag ElementType, attrs jsx.Attrs) (string, jsx.Tri) {
	exp := r.ExplicitRole(attrs)
	switch exp.State {
	case RoleResolved:
		return exp.Role, jsx.Yes
	case RoleIndeterminate:
		return "", jsx.Unknown
	default:
		return r.ImplicitRole(tag, attrs), jsx.Yes
	}
}
