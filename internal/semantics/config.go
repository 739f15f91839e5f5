package semantics

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// DefaultSearchDepth is the accessible name search budget when none is configured.
	DefaultSearchDepth = 2

	// MaxSearchDepth caps any configured budget.
	MaxSearchDepth = 25
)

var predefinedLabelAttributes = []string{"aria-label", "aria-labelledby", "title", "alt"}

// Config is the per-run configuration of a Resolver.
type Config struct {
	// ComponentTags maps component names to markup tags. Keys are exact names or
	// doublestar patterns: "Link", "Icon*", "*Button".
	ComponentTags map[string]string

	// PolymorphicProp names an attribute overriding the rendered tag, like `as`.
	PolymorphicProp string

	// PolymorphicAllowList limits PolymorphicProp to the listed components. Empty means any.
	PolymorphicAllowList []string

	// LabelAttributes are extra attributes providing an accessible name.
	LabelAttributes []string

	// ControlComponents are patterns of components assumed to render a labelled control.
	ControlComponents []string

	// ForAttributes are attributes tying a label to its control. Defaults to htmlFor and for.
	ForAttributes []string

	// MaxSearchDepth is the accessible name search budget, 0 means DefaultSearchDepth.
	MaxSearchDepth int
}

// Resolver answers accessibility questions about tree nodes. It is immutable after New and
// safe for concurrent use.
type Resolver struct {
	exact      map[string]string
	globs      []componentGlob
	polyProp   string
	polyAllow  []string
	labelAttrs []string
	controls   []string
	forAttrs   []string
	depth      int
}

type componentGlob struct {
	pattern string
	tag     string
}

// New builds a resolver out of the configuration.
func New(cfg Config) (*Resolver, error) {
	r := &Resolver{
		exact:     map[string]string{},
		polyProp:  cfg.PolymorphicProp,
		polyAllow: slices.Clone(cfg.PolymorphicAllowList),
		depth:     cfg.MaxSearchDepth,
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(cfg.ComponentTags)) {
		tag := cfg.ComponentTags[name]
		if !isPattern(name) {
			r.exact[name] = tag
			continue
		}
		if !doublestar.ValidatePattern(name) {
			errs = append(errs, fmt.Errorf("component pattern %q is malformed", name))
			continue
		}
		r.globs = append(r.globs, componentGlob{pattern: name, tag: tag})
	}

	for _, pattern := range cfg.ControlComponents {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("control component pattern %q is malformed", pattern))
			continue
		}
		r.controls = append(r.controls, pattern)
	}

	r.labelAttrs = mergeNames(predefinedLabelAttributes, cfg.LabelAttributes)
	r.forAttrs = slices.Clone(cfg.ForAttributes)
	if len(r.forAttrs) == 0 {
		r.forAttrs = []string{"htmlFor", "for"}
	}

	switch {
	case r.depth < 0:
		errs = append(errs, fmt.Errorf("search depth must not be negative, got %d", r.depth))
	case r.depth == 0:
		r.depth = DefaultSearchDepth
	case r.depth > MaxSearchDepth:
		r.depth = MaxSearchDepth
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("build resolver: %w", errors.Join(errs...))
	}
	return r, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config) *Resolver {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// SearchDepth returns the effective accessible name search budget.
func (r *Resolver) SearchDepth() int {
	return r.depth
}

// LabelAttributes returns every attribute treated as a name source.
func (r *Resolver) LabelAttributes() []string {
	return slices.Clone(r.labelAttrs)
}

// ForAttributes returns attributes tying a label to its control.
func (r *Resolver) ForAttributes() []string {
	return slices.Clone(r.forAttrs)
}

// WithLabelAttributes returns a copy of the resolver with extra label attributes.
func (r *Resolver) WithLabelAttributes(names ...string) *Resolver {
	if len(names) == 0 {
		return r
	}
	c := *r
	c.labelAttrs = mergeNames(r.labelAttrs, names)
	return &c
}

// WithControlComponents returns a copy of the resolver with extra control component patterns.
// Malformed patterns are ignored.
func (r *Resolver) WithControlComponents(patterns ...string) *Resolver {
	if len(patterns) == 0 {
		return r
	}
	c := *r
	c.controls = slices.Clone(r.controls)
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) && !slices.Contains(c.controls, p) {
			c.controls = append(c.controls, p)
		}
	}
	return &c
}

// WithSearchDepth returns a copy of the resolver with another search budget.
// Non-positive values keep the current one.
func (r *Resolver) WithSearchDepth(depth int) *Resolver {
	if depth <= 0 {
		return r
	}
	c := *r
	c.depth = min(depth, MaxSearchDepth)
	return &c
}

func isPattern(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}

func mergeNames(base, extra []string) []string {
	res := slices.Clone(base)
	for _, name := range extra {
		if !slices.ContainsFunc(res, func(v string) bool { return strings.EqualFold(v, name) }) {
			res = append(res, name)
		}
	}
	return res
}

// matchName checks a component name against exact names and patterns.
func matchName(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
