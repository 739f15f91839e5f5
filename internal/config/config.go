// Package config reads .a11yful.yaml files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
)

// Config is a configuration ready for a run.
type Config struct {
	// Path is the file the configuration was read from, empty for defaults.
	Path string

	Resolver semantics.Config
	Levels   reporting.Levels

	// Options are raw rule options, checks decode them on their own.
	Options map[rules.Rule]*yaml.Node
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Levels:  reporting.Levels{},
		Options: map[rules.Rule]*yaml.Node{},
	}
}

// Enabled returns rules that are not off, in rule order.
func (c *Config) Enabled() []rules.Rule {
	var res []rules.Rule
	for _, r := range rules.All() {
		if c.Levels.Of(r) != rules.LevelOff {
			res = append(res, r)
		}
	}
	return res
}

type file struct {
	Settings settings             `yaml:"settings"`
	Rules    map[string]yaml.Node `yaml:"rules"`
}

type settings struct {
	Components           map[string]string `yaml:"components"`
	PolymorphicPropName  string            `yaml:"polymorphicPropName"`
	PolymorphicAllowList []string          `yaml:"polymorphicAllowList"`
	Attributes           struct {
		For []string `yaml:"for"`
	} `yaml:"attributes"`
	LabelAttributes   []string `yaml:"labelAttributes"`
	ControlComponents []string `yaml:"controlComponents"`
	Depth             int      `yaml:"depth"`
}

// Parse decodes configuration data. name is used in error messages only.
func Parse(name string, data []byte) (*Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	cfg := Default()
	cfg.Path = name
	cfg.Resolver = semantics.Config{
		ComponentTags:        f.Settings.Components,
		PolymorphicProp:      f.Settings.PolymorphicPropName,
		PolymorphicAllowList: f.Settings.PolymorphicAllowList,
		LabelAttributes:      f.Settings.LabelAttributes,
		ControlComponents:    f.Settings.ControlComponents,
		ForAttributes:        f.Settings.Attributes.For,
		MaxSearchDepth:       f.Settings.Depth,
	}

	var errs []error
	for _, slug := range slices.Sorted(maps.Keys(f.Rules)) {
		rule, ok := rules.BySlug(slug)
		if !ok {
			errs = append(errs, fmt.Errorf("rules: unknown rule %q", slug))
			continue
		}
		node := f.Rules[slug]
		level, options, err := ruleEntry(&node)
		if err != nil {
			errs = append(errs, fmt.Errorf("rules.%s: line %d: %w", slug, node.Line, err))
			continue
		}
		cfg.Levels[rule] = level
		if options != nil {
			cfg.Options[rule] = options
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s: %w", name, errors.Join(errs...))
	}

	return cfg, nil
}

// ruleEntry reads a rule setting. It is either a level, a mapping with an optional level key
// and options, or a sequence of a level and an options mapping. A rule given options without a
// level runs at the error level.
func ruleEntry(node *yaml.Node) (rules.Level, *yaml.Node, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var level rules.Level
		if err := node.Decode(&level); err != nil {
			return 0, nil, err
		}
		return level, nil, nil

	case yaml.MappingNode:
		return optionsMapping(node, rules.LevelError)

	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return 0, nil, errors.New("expected a level optionally followed by options")
		}
		var level rules.Level
		if err := node.Content[0].Decode(&level); err != nil {
			return 0, nil, err
		}
		if len(node.Content) == 1 {
			return level, nil, nil
		}
		if node.Content[1].Kind != yaml.MappingNode {
			return 0, nil, errors.New("rule options must be a mapping")
		}
		return optionsMapping(node.Content[1], level)

	default:
		return 0, nil, errors.New("expected a level or a mapping")
	}
}

func optionsMapping(node *yaml.Node, level rules.Level) (rules.Level, *yaml.Node, error) {
	options := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Line: node.Line,
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == "level" {
			if err := value.Decode(&level); err != nil {
				return 0, nil, err
			}
			continue
		}
		options.Content = append(options.Content, key, value)
	}
	if len(options.Content) == 0 {
		return level, nil, nil
	}
	return level, options, nil
}
