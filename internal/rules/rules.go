// Package rules defines the canonical rule codes (AF-series) enforced by a11yful.
// Each rule is a distinct accessibility requirement checked over static markup.
//
// Rule numbering scheme:
//
//	000–099  Content and accessible naming
//	100–149  ARIA validity
//	150–199  Interaction and focus
//	900–999  Frontend diagnostics
package rules

import (
	"fmt"
	"slices"
)

// Rule represents an a11yful rule code (AF-series).
type Rule int

const (
	ruleInvalid Rule = iota

	AF000AccessibleEmoji
	AF010AltText
	AF015AnchorHasContent
	AF020ControlHasAssociatedLabel
	AF025HeadingHasContent
	AF030HTMLHasLang
	AF035IframeHasTitle
	AF040ImgRedundantAlt
	AF045LabelHasAssociatedControl
	AF050Lang
	AF055MediaHasCaption
	AF060NoDistractingElements

	AF100AriaActivedescendantHasTabindex
	AF105AriaProps
	AF110AriaProptypes
	AF115AriaRole
	AF120NoAriaHiddenOnFocusable
	AF125NoRedundantRoles
	AF130PreferTagOverRole
	AF135RoleSupportsAriaProps
	AF140Scope

	AF150AnchorIsValid
	AF155ClickEventsHaveKeyEvents
	AF160InteractiveSupportsFocus
	AF165MouseEventsHaveKeyEvents
	AF170NoAccessKey
	AF175NoAutofocus
	AF180NoNoninteractiveElementInteractions
	AF185NoNoninteractiveTabindex
	AF190NoStaticElementInteractions
	AF195TabindexNoPositive

	AF900ParseProblem

	ruleSentinel
)

type ruleMeta struct {
	code        int
	name        string
	slug        string
	description string
	deprecated  bool
}

var ruleTable = map[Rule]ruleMeta{
	AF000AccessibleEmoji: {0, "AccessibleEmoji", "accessible-emoji",
		"Emojis must be wrapped in <span role=\"img\"> with a label.", true},
	AF010AltText: {10, "AltText", "alt-text",
		"Elements presenting images must have a text alternative.", false},
	AF015AnchorHasContent: {15, "AnchorHasContent", "anchor-has-content",
		"Anchors must have content and the content must be accessible by a screen reader.", false},
	AF020ControlHasAssociatedLabel: {20, "ControlHasAssociatedLabel", "control-has-associated-label",
		"A control must be associated with a text label.", false},
	AF025HeadingHasContent: {25, "HeadingHasContent", "heading-has-content",
		"Headings must have content and the content must be accessible by a screen reader.", false},
	AF030HTMLHasLang: {30, "HTMLHasLang", "html-has-lang",
		"<html> elements must have the lang prop.", false},
	AF035IframeHasTitle: {35, "IframeHasTitle", "iframe-has-title",
		"<iframe> elements must have a unique title property.", false},
	AF040ImgRedundantAlt: {40, "ImgRedundantAlt", "img-redundant-alt",
		"Redundant alt attribute. Screen-readers already announce `img` tags as an image. You don’t need to use the words `image`, `photo`, or `picture` (or any specified custom words) in the alt prop.", false},
	AF045LabelHasAssociatedControl: {45, "LabelHasAssociatedControl", "label-has-associated-control",
		"A form label must be associated with a control.", false},
	AF050Lang: {50, "Lang", "lang",
		"lang attribute must have a valid value.", false},
	AF055MediaHasCaption: {55, "MediaHasCaption", "media-has-caption",
		"Media elements such as <audio> and <video> must have a <track> for captions.", false},
	AF060NoDistractingElements: {60, "NoDistractingElements", "no-distracting-elements",
		"Do not use distracting elements like <marquee> and <blink>.", false},

	AF100AriaActivedescendantHasTabindex: {100, "AriaActivedescendantHasTabindex", "aria-activedescendant-has-tabindex",
		"An element that manages focus with `aria-activedescendant` must have a tabindex.", false},
	AF105AriaProps: {105, "AriaProps", "aria-props",
		"aria-* attributes must be valid ARIA properties.", false},
	AF110AriaProptypes: {110, "AriaProptypes", "aria-proptypes",
		"ARIA state and property values must be valid.", false},
	AF115AriaRole: {115, "AriaRole", "aria-role",
		"Elements with ARIA roles must use a valid, non-abstract ARIA role.", false},
	AF120NoAriaHiddenOnFocusable: {120, "NoAriaHiddenOnFocusable", "no-aria-hidden-on-focusable",
		"aria-hidden=\"true\" must not be set on focusable elements.", false},
	AF125NoRedundantRoles: {125, "NoRedundantRoles", "no-redundant-roles",
		"The element has an implicit role equal to the explicit one.", false},
	AF130PreferTagOverRole: {130, "PreferTagOverRole", "prefer-tag-over-role",
		"Prefer semantic HTML tags over ARIA roles.", false},
	AF135RoleSupportsAriaProps: {135, "RoleSupportsAriaProps", "role-supports-aria-props",
		"Elements with explicit or implicit roles must use only ARIA properties supported by that role.", false},
	AF140Scope: {140, "Scope", "scope",
		"The scope prop can only be used on <th> elements.", false},

	AF150AnchorIsValid: {150, "AnchorIsValid", "anchor-is-valid",
		"Anchors must be valid navigable elements.", false},
	AF155ClickEventsHaveKeyEvents: {155, "ClickEventsHaveKeyEvents", "click-events-have-key-events",
		"Visible, non-interactive elements with click handlers must have at least one keyboard listener.", false},
	AF160InteractiveSupportsFocus: {160, "InteractiveSupportsFocus", "interactive-supports-focus",
		"Elements with interactive roles and handlers must be focusable.", false},
	AF165MouseEventsHaveKeyEvents: {165, "MouseEventsHaveKeyEvents", "mouse-events-have-key-events",
		"onMouseOver and onMouseOut must be accompanied by onFocus and onBlur for keyboard users.", false},
	AF170NoAccessKey: {170, "NoAccessKey", "no-access-key",
		"No access key attribute allowed. Inconsistencies between keyboard shortcuts and keyboard commands used by screen readers and keyboard-only users create a11y complications.", false},
	AF175NoAutofocus: {175, "NoAutofocus", "no-autofocus",
		"The autoFocus prop should not be used, as it can reduce usability and accessibility for users.", false},
	AF180NoNoninteractiveElementInteractions: {180, "NoNoninteractiveElementInteractions", "no-noninteractive-element-interactions",
		"Non-interactive elements should not be assigned mouse or keyboard event listeners.", false},
	AF185NoNoninteractiveTabindex: {185, "NoNoninteractiveTabindex", "no-noninteractive-tabindex",
		"`tabIndex` should only be declared on interactive elements.", false},
	AF190NoStaticElementInteractions: {190, "NoStaticElementInteractions", "no-static-element-interactions",
		"Static HTML elements with event handlers require a role.", false},
	AF195TabindexNoPositive: {195, "TabindexNoPositive", "tabindex-no-positive",
		"Avoid positive integer values for tabIndex.", false},

	AF900ParseProblem: {900, "ParseProblem", "parse-problem",
		"The file has syntax errors, parts of it may have been left unchecked.", false},
}

// String returns the canonical code and short name of the rule.
// Example: "AF010: AltText"
func (r Rule) String() string {
	m, ok := ruleTable[r]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
	return fmt.Sprintf("AF%03d: %s", m.code, m.name)
}

// Code returns the bare rule code like "AF010".
func (r Rule) Code() string {
	m, ok := ruleTable[r]
	if !ok {
		return fmt.Sprintf("AF???(%d)", r)
	}
	return fmt.Sprintf("AF%03d", m.code)
}

// Slug returns the configuration name of the rule.
func (r Rule) Slug() string {
	m, ok := ruleTable[r]
	if !ok {
		return fmt.Sprintf("rule-unknown-%d", r)
	}
	return m.slug
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	m, ok := ruleTable[r]
	if !ok {
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
	return m.description
}

// Deprecated rules are kept for compatibility and are off unless enabled explicitly.
func (r Rule) Deprecated() bool {
	return ruleTable[r].deprecated
}

// DefaultLevel returns the level the rule runs at without configuration.
func (r Rule) DefaultLevel() Level {
	switch {
	case r.Deprecated():
		return LevelOff
	case r == AF900ParseProblem:
		return LevelWarn
	default:
		return LevelError
	}
}

// BySlug looks a rule up by its configuration name or by its code.
func BySlug(slug string) (Rule, bool) {
	for r, m := range ruleTable {
		if m.slug == slug || fmt.Sprintf("AF%03d", m.code) == slug {
			return r, true
		}
	}
	return ruleInvalid, false
}

// All returns every rule ordered by code.
func All() []Rule {
	res := make([]Rule, 0, len(ruleTable))
	for r := ruleInvalid + 1; r < ruleSentinel; r++ {
		res = append(res, r)
	}
	return res
}

// Slugs returns configuration names of all rules, sorted.
func Slugs() []string {
	res := make([]string, 0, len(ruleTable))
	for _, m := range ruleTable {
		res = append(res, m.slug)
	}
	slices.Sort(res)
	return res
}
