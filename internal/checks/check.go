package checks

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
)

// Pass is a single file going through the checks.
type Pass struct {
	File     *jsx.File
	Resolver *semantics.Resolver
	Reporter *reporting.Reporter
}

// Report records a violation of the rule at pos. An empty message stands for the rule description.
func (p *Pass) Report(rule rules.Rule, pos token.Pos, message string) {
	p.Reporter.Report(rule, message, pos)
}

// Reportf is Report with a formatted message.
func (p *Pass) Reportf(rule rules.Rule, pos token.Pos, format string, a ...any) {
	p.Reporter.Reportf(rule, pos, format, a...)
}

// Check is a policy predicate run over every element of a file.
type Check interface {
	Rule() rules.Rule
	Check(p *Pass, e *jsx.Element)
}

// configurable checks take options. Options returns a pointer to the options struct filled with
// defaults, configured values are decoded over it.
type configurable interface {
	Options() any
}

// preparer checks derive state from the run resolver once options are known.
type preparer interface {
	Prepare(r *semantics.Resolver) error
}

// decodeOptions decodes node into dst rejecting keys dst does not declare.
func decodeOptions(node *yaml.Node, dst any) error {
	if node == nil {
		return nil
	}
	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("encode options back: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
