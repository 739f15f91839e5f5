package checks

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
)

var constructors = map[rules.Rule]func() Check{
	rules.AF000AccessibleEmoji:           func() Check { return &accessibleEmoji{} },
	rules.AF010AltText:                   newAltText,
	rules.AF015AnchorHasContent:          func() Check { return &anchorHasContent{} },
	rules.AF020ControlHasAssociatedLabel: func() Check { return &controlHasAssociatedLabel{} },
	rules.AF025HeadingHasContent:         func() Check { return &headingHasContent{} },
	rules.AF030HTMLHasLang:               func() Check { return htmlHasLang{} },
	rules.AF035IframeHasTitle:            func() Check { return iframeHasTitle{} },
	rules.AF040ImgRedundantAlt:           func() Check { return &imgRedundantAlt{} },
	rules.AF045LabelHasAssociatedControl: newLabelHasAssociatedControl,
	rules.AF050Lang:                      func() Check { return lang{} },
	rules.AF055MediaHasCaption:           func() Check { return &mediaHasCaption{} },
	rules.AF060NoDistractingElements:     newNoDistractingElements,

	rules.AF100AriaActivedescendantHasTabindex: func() Check { return ariaActivedescendantHasTabindex{} },
	rules.AF105AriaProps:                       func() Check { return ariaProps{} },
	rules.AF110AriaProptypes:                   func() Check { return ariaProptypes{} },
	rules.AF115AriaRole:                        func() Check { return &ariaRole{} },
	rules.AF120NoAriaHiddenOnFocusable:         func() Check { return noAriaHiddenOnFocusable{} },
	rules.AF125NoRedundantRoles:                newNoRedundantRoles,
	rules.AF130PreferTagOverRole:               func() Check { return preferTagOverRole{} },
	rules.AF135RoleSupportsAriaProps:           func() Check { return roleSupportsAriaProps{} },
	rules.AF140Scope:                           func() Check { return scope{} },

	rules.AF150AnchorIsValid:                       newAnchorIsValid,
	rules.AF155ClickEventsHaveKeyEvents:            func() Check { return clickEventsHaveKeyEvents{} },
	rules.AF160InteractiveSupportsFocus:            newInteractiveSupportsFocus,
	rules.AF165MouseEventsHaveKeyEvents:            newMouseEventsHaveKeyEvents,
	rules.AF170NoAccessKey:                         func() Check { return noAccessKey{} },
	rules.AF175NoAutofocus:                         func() Check { return &noAutofocus{} },
	rules.AF180NoNoninteractiveElementInteractions: newNoNoninteractiveElementInteractions,
	rules.AF185NoNoninteractiveTabindex:            newNoNoninteractiveTabindex,
	rules.AF190NoStaticElementInteractions:         newNoStaticElementInteractions,
	rules.AF195TabindexNoPositive:                  func() Check { return tabindexNoPositive{} },
}

// New creates the check of a rule with default options. Rules without a check, like parse
// problems, give nil.
func New(rule rules.Rule) Check {
	c, ok := constructors[rule]
	if !ok {
		return nil
	}
	return c()
}

// Suite is a configured set of checks. It is read-only once built and is shared by every file
// of a run.
type Suite struct {
	resolver *semantics.Resolver
	checks   []Check
}

// NewSuite builds checks of the enabled rules, decodes their options and prepares them against
// the resolver. Every misconfigured rule is reported at once.
func NewSuite(resolver *semantics.Resolver, enabled []rules.Rule, options map[rules.Rule]*yaml.Node) (*Suite, error) {
	s := &Suite{resolver: resolver}

	var errs []error
	for rule, node := range options {
		if _, ok := constructors[rule]; !ok && node != nil {
			errs = append(errs, fmt.Errorf("rule %s takes no options", rule.Slug()))
		}
	}

	for _, rule := range enabled {
		c := New(rule)
		if c == nil {
			continue
		}

		if node := options[rule]; node != nil {
			cfg, ok := c.(configurable)
			if !ok {
				errs = append(errs, fmt.Errorf("rule %s takes no options", rule.Slug()))
				continue
			}
			if err := decodeOptions(node, cfg.Options()); err != nil {
				errs = append(errs, fmt.Errorf("decode %s options: %w", rule.Slug(), err))
				continue
			}
		}

		if p, ok := c.(preparer); ok {
			if err := p.Prepare(resolver); err != nil {
				errs = append(errs, fmt.Errorf("prepare %s: %w", rule.Slug(), err))
				continue
			}
		}

		s.checks = append(s.checks, c)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("build checks: %w", errors.Join(errs...))
	}
	return s, nil
}

// Resolver returns the resolver the suite was built with.
func (s *Suite) Resolver() *semantics.Resolver {
	return s.resolver
}

// Len returns the number of active checks.
func (s *Suite) Len() int {
	return len(s.checks)
}

// Run runs every check over every element of the pass file in document order.
func (s *Suite) Run(p *Pass) {
	for e := range p.File.Elements() {
		if e.IsFragment() {
			continue
		}
		for _, c := range s.checks {
			c.Check(p, e)
		}
	}
}
