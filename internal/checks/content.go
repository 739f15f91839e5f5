package checks

import (
	"strings"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/language"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
)

type accessibleEmoji struct{}

func (accessibleEmoji) Rule() rules.Rule { return rules.AF000AccessibleEmoji }

func (c accessibleEmoji) Check(p *Pass, e *jsx.Element) {
	text, ok := firstLiteralChild(e)
	if !ok || !gomoji.ContainsEmoji(text) {
		return
	}

	tag := p.Resolver.ElementType(e)
	if semantics.IsHidden(tag, e.Attrs) != jsx.No {
		return
	}
	role, pr := e.Attr("role")
	if pr == jsx.Possible {
		return
	}
	if pr == jsx.Present {
		if _, ok := literalText(role.Value); !ok && !role.Value.Dropped() {
			return
		}
	}
	label := presence(e.Attrs, "aria-label").Or(presence(e.Attrs, "aria-labelledby"))
	if label == jsx.Unknown {
		return
	}

	roleText, _ := e.Attrs.Text("role")
	if tag == "span" && roleText == "img" && label == jsx.Yes {
		return
	}
	p.Report(c.Rule(), e.Pos, "")
}

// firstLiteralChild returns the first text child or string literal expression child.
func firstLiteralChild(e *jsx.Element) (string, bool) {
	for _, child := range e.Children {
		switch c := child.(type) {
		case *jsx.Text:
			return c.Value, true
		case *jsx.Expr:
			if c.Value.Kind == jsx.ValueString {
				return c.Value.Str, true
			}
		}
	}
	return "", false
}

type anchorHasContent struct {
	opts struct {
		Components []string `yaml:"components"`
	}
}

func (*anchorHasContent) Rule() rules.Rule { return rules.AF015AnchorHasContent }
func (c *anchorHasContent) Options() any  { return &c.opts }

func (c *anchorHasContent) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); name != "a" && !listed(c.opts.Components, name) {
		return
	}
	has := p.Resolver.HasAccessibleContent(e).
		Or(presence(e.Attrs, "title")).
		Or(presence(e.Attrs, "aria-label"))
	if has == jsx.No {
		p.Report(c.Rule(), e.Pos, "")
	}
}

type headingHasContent struct {
	opts struct {
		Components []string `yaml:"components"`
	}
}

var headings = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

func (*headingHasContent) Rule() rules.Rule { return rules.AF025HeadingHasContent }
func (c *headingHasContent) Options() any  { return &c.opts }

func (c *headingHasContent) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); !listed(headings, name) && !listed(c.opts.Components, name) {
		return
	}
	if p.Resolver.HasAccessibleContent(e) != jsx.No {
		return
	}
	if semantics.IsHidden(p.Resolver.ElementType(e), e.Attrs) != jsx.No {
		return
	}
	p.Report(c.Rule(), e.Pos, "")
}

type htmlHasLang struct{}

func (htmlHasLang) Rule() rules.Rule { return rules.AF030HTMLHasLang }

func (c htmlHasLang) Check(p *Pass, e *jsx.Element) {
	if p.Resolver.ElementType(e) != "html" {
		return
	}
	if attrTruthy(e.Attrs, "lang") == jsx.No {
		p.Report(c.Rule(), e.Pos, "")
	}
}

type iframeHasTitle struct{}

func (iframeHasTitle) Rule() rules.Rule { return rules.AF035IframeHasTitle }

func (c iframeHasTitle) Check(p *Pass, e *jsx.Element) {
	if p.Resolver.ElementType(e) != "iframe" {
		return
	}
	a, pr := e.Attr("title")
	switch pr {
	case jsx.Possible:
		return
	case jsx.Present:
		switch a.Value.Kind {
		case jsx.ValueString:
			if a.Value.Str != "" {
				return
			}
		case jsx.ValueExpr, jsx.ValueConditional:
			return
		}
	}
	p.Report(c.Rule(), e.Pos, "")
}

type lang struct{}

func (lang) Rule() rules.Rule { return rules.AF050Lang }

func (c lang) Check(p *Pass, e *jsx.Element) {
	if p.Resolver.ElementType(e) != "html" {
		return
	}
	a := e.Attrs.Get("lang")
	if a == nil {
		return
	}

	switch a.Value.Kind {
	case jsx.ValueString:
		if validLanguageTag(a.Value.Str) {
			return
		}
	case jsx.ValueExpr, jsx.ValueConditional, jsx.ValueElement, jsx.ValueNull:
		return
	}
	p.Reportf(c.Rule(), a.Pos, "lang attribute must have a valid value, got %s", a.Value)
}

func validLanguageTag(s string) bool {
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

type mediaHasCaption struct {
	opts struct {
		Audio []string `yaml:"audio"`
		Video []string `yaml:"video"`
		Track []string `yaml:"track"`
	}
}

func (*mediaHasCaption) Rule() rules.Rule { return rules.AF055MediaHasCaption }
func (c *mediaHasCaption) Options() any  { return &c.opts }

func (c *mediaHasCaption) Check(p *Pass, e *jsx.Element) {
	name := tagOf(p, e)
	isMedia := name == "audio" || name == "video" || listed(c.opts.Audio, name) || listed(c.opts.Video, name)
	if !isMedia {
		return
	}
	if e.Attrs.IsTrue("muted") != jsx.No {
		return
	}

	tracks := 0
	for _, child := range e.Children {
		switch ch := child.(type) {
		case *jsx.Expr:
			if !ch.Value.IsLiteral() {
				// Tracks may come from the expression.
				return
			}
		case *jsx.Element:
			if tn := tagOf(p, ch); tn != "track" && !listed(c.opts.Track, tn) {
				continue
			}
			tracks++
			kind, pr := ch.Attr("kind")
			switch pr {
			case jsx.Possible:
				return
			case jsx.Present:
				text, ok := kind.Value.Text()
				if !ok && !kind.Value.Dropped() {
					return
				}
				if strings.EqualFold(text, "captions") {
					return
				}
			}
		}
	}

	if tracks == 0 {
		p.Reportf(c.Rule(), e.Pos, "<%s> must have a <track> for captions", name)
		return
	}
	p.Reportf(c.Rule(), e.Pos, `<%s> tracks must include one with kind="captions"`, name)
}

type noDistractingElements struct {
	opts struct {
		Elements []string `yaml:"elements"`
	}
}

func newNoDistractingElements() Check {
	c := &noDistractingElements{}
	c.opts.Elements = []string{"marquee", "blink"}
	return c
}

func (*noDistractingElements) Rule() rules.Rule { return rules.AF060NoDistractingElements }
func (c *noDistractingElements) Options() any  { return &c.opts }

func (c *noDistractingElements) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); listed(c.opts.Elements, name) {
		p.Reportf(c.Rule(), e.Pos, "Do not use <%s> elements as they can create visual accessibility issues and are deprecated.", name)
	}
}
