package checks

import (
	"slices"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

const inputImage = `input[type="image"]`

type altText struct {
	opts struct {
		Elements   []string `yaml:"elements"`
		Img        []string `yaml:"img"`
		Object     []string `yaml:"object"`
		Area       []string `yaml:"area"`
		InputImage []string `yaml:"input[type=\"image\"]"`
	}
}

func newAltText() Check {
	c := &altText{}
	c.opts.Elements = []string{"img", "object", "area", inputImage}
	return c
}

func (*altText) Rule() rules.Rule { return rules.AF010AltText }
func (c *altText) Options() any  { return &c.opts }

func (c *altText) components(element string) []string {
	switch element {
	case "img":
		return c.opts.Img
	case "object":
		return c.opts.Object
	case "area":
		return c.opts.Area
	case inputImage:
		return c.opts.InputImage
	default:
		return nil
	}
}

// kind maps a name to the element kind whose requirements apply to it.
func (c *altText) kind(name string) string {
	element := name
	if name == "input" {
		element = inputImage
	}
	if listed(c.opts.Elements, element) {
		return element
	}
	for _, el := range c.opts.Elements {
		if listed(c.components(el), name) {
			return el
		}
	}
	return ""
}

func (c *altText) Check(p *Pass, e *jsx.Element) {
	name := tagOf(p, e)
	switch c.kind(name) {
	case "img":
		c.img(p, e)
	case "object":
		c.object(p, e)
	case "area":
		if c.missingText(e) {
			p.Report(c.Rule(), e.Pos, "Each area of an image map must have a text alternative through the `alt`, `aria-label`, or `aria-labelledby` prop.")
		}
	case inputImage:
		if name == "input" {
			typ, ok := e.Attrs.Text("type")
			if !ok || typ != "image" {
				return
			}
		}
		if c.missingText(e) {
			p.Report(c.Rule(), e.Pos, `<input> elements with type="image" must have a text alternative through the `+"`alt`, `aria-label`, or `aria-labelledby` prop.")
		}
	}
}

func (c *altText) img(p *Pass, e *jsx.Element) {
	alt, pr := e.Attr("alt")
	switch pr {
	case jsx.Possible:
		return
	case jsx.Absent:
		if exp := p.Resolver.ExplicitRole(e.Attrs); exp.State == semantics.RoleResolved && taxonomy.IsPresentationRole(exp.Role) {
			p.Report(c.Rule(), e.Pos, `Prefer alt="" over a presentational role. First rule of aria is to not use aria if it can be achieved via native HTML.`)
			return
		}
		for _, label := range []string{"aria-label", "aria-labelledby"} {
			if e.Attrs.Has(label) && labelHasValue(e.Attrs, label) == jsx.No {
				p.Reportf(c.Rule(), e.Pos, "The %s attribute must have a value. The alt attribute is preferred over %s for images.", label, label)
				return
			}
		}
		p.Report(c.Rule(), e.Pos, `img elements must have an alt prop, either with meaningful text, or an empty string for decorative images.`)
		return
	}

	if validAlt(alt.Value) {
		return
	}
	p.Report(c.Rule(), alt.Pos, `Invalid alt value for img. Use alt="" for presentational images.`)
}

// validAlt accepts any string including the empty one and anything the analysis cannot evaluate.
func validAlt(v jsx.Value) bool {
	switch v.Kind {
	case jsx.ValueString:
		return true
	case jsx.ValueImplicit:
		return false
	default:
		return truthy(v) != jsx.No
	}
}

func (c *altText) object(p *Pass, e *jsx.Element) {
	has := labelHasValue(e.Attrs, "aria-label").
		Or(labelHasValue(e.Attrs, "aria-labelledby")).
		Or(attrTruthy(e.Attrs, "title")).
		Or(p.Resolver.HasAccessibleContent(e))
	if has == jsx.No {
		p.Report(c.Rule(), e.Pos, "Embedded <object> elements must have alternative text by providing inner text, aria-label or aria-labelledby props.")
	}
}

// missingText tells if an area or an image input has neither a label nor a usable alt.
func (c *altText) missingText(e *jsx.Element) bool {
	if labelHasValue(e.Attrs, "aria-label").Or(labelHasValue(e.Attrs, "aria-labelledby")) != jsx.No {
		return false
	}
	alt, pr := e.Attr("alt")
	switch pr {
	case jsx.Absent:
		return true
	case jsx.Possible:
		return false
	}
	switch alt.Value.Kind {
	case jsx.ValueImplicit, jsx.ValueString:
		return false
	}
	return truthy(alt.Value) == jsx.No
}

type imgRedundantAlt struct {
	opts struct {
		Components []string `yaml:"components"`
		Words      []string `yaml:"words"`
	}
}

var redundantWords = []string{"image", "photo", "picture"}

func (*imgRedundantAlt) Rule() rules.Rule { return rules.AF040ImgRedundantAlt }
func (c *imgRedundantAlt) Options() any  { return &c.opts }

func (c *imgRedundantAlt) Check(p *Pass, e *jsx.Element) {
	if name := tagOf(p, e); name != "img" && !listed(c.opts.Components, name) {
		return
	}
	if semantics.IsHidden(p.Resolver.ElementType(e), e.Attrs) != jsx.No {
		return
	}
	alt := e.Attrs.Get("alt")
	if alt == nil || alt.Value.Kind != jsx.ValueString {
		return
	}

	words := make([]string, 0, len(redundantWords)+len(c.opts.Words))
	for _, w := range slices.Concat(redundantWords, c.opts.Words) {
		words = append(words, strings.ToLower(w))
	}
	if containsRedundantWord(alt.Value.Str, words) {
		p.Report(c.Rule(), alt.Pos, "")
	}
}

// containsRedundantWord matches whole words of texts with ASCII in them and substrings of
// other texts.
func containsRedundantWord(text string, words []string) bool {
	if hasASCII(text) {
		for _, w := range strings.Fields(text) {
			if listed(words, strings.ToLower(w)) {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func hasASCII(s string) bool {
	for _, r := range s {
		if r >= 0x20 && r <= 0x7f {
			return true
		}
	}
	return false
}
