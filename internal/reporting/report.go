package reporting

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"sync"

	"github.com/sirkon/a11yful/internal/rules"
)

// Engine collects rule violations found while checking files. It is safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	reports []Report
	levels  Levels
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase   Phase
	Rule    rules.Rule
	Level   rules.Level
	Pos     token.Pos
	Message string
}

// Levels overrides default rule levels.
type Levels map[rules.Rule]rules.Level

// Of returns the level of the rule, falling back to its default.
func (l Levels) Of(r rules.Rule) rules.Level {
	if v, ok := l[r]; ok {
		return v
	}
	return r.DefaultLevel()
}

// Phase marks the stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseParse         // frontend syntax problems
	PhaseCheck         // rule checks over parsed trees
)

func (p Phase) String() string {
	switch p {
	case PhaseParse:
		return "parse"
	case PhaseCheck:
		return "check"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// NewEngine creates an engine applying the given levels. Reports of rules which are off are
// dropped on arrival.
func NewEngine(levels Levels) *Engine {
	return &Engine{levels: levels}
}

// Reporter binds an Engine to a fixed phase.
type Reporter struct {
	parent *Engine
	phase  Phase
}

// Phase returns a phase-bound reporter.
func (e *Engine) Phase(p Phase) *Reporter {
	return &Reporter{parent: e, phase: p}
}

// Enabled tells if reports of the rule are kept.
func (e *Engine) Enabled(r rules.Rule) bool {
	return e.levels.Of(r) != rules.LevelOff
}

// Add stores a report as is.
func (e *Engine) Add(rep Report) {
	e.mu.Lock()
	e.reports = append(e.reports, rep)
	e.mu.Unlock()
}

// Report records a rule violation under the bound phase. An empty message is replaced with
// the rule description.
func (rp *Reporter) Report(rule rules.Rule, message string, pos token.Pos) {
	level := rp.parent.levels.Of(rule)
	if level == rules.LevelOff {
		return
	}
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Add(Report{
		Phase:   rp.phase,
		Rule:    rule,
		Level:   level,
		Message: message,
		Pos:     pos,
	})
}

// Reportf is Report with a formatted message.
func (rp *Reporter) Reportf(rule rules.Rule, pos token.Pos, format string, a ...any) {
	rp.Report(rule, fmt.Sprintf(format, a...), pos)
}

// Reports returns a snapshot of all collected records in arrival order.
func (e *Engine) Reports() []Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Report, len(e.reports))
	copy(out, e.reports)
	return out
}

// Sorted returns a snapshot ordered by file, offset and rule code.
func (e *Engine) Sorted(fset *token.FileSet) []Report {
	out := e.Reports()
	slices.SortStableFunc(out, func(a, b Report) int {
		pa, pb := fset.Position(a.Pos), fset.Position(b.Pos)
		return cmp.Or(
			cmp.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Offset, pb.Offset),
			cmp.Compare(a.Rule, b.Rule),
		)
	})
	return out
}

// Count returns numbers of reports per level.
func (e *Engine) Count() map[rules.Level]int {
	res := map[rules.Level]int{}
	for _, rep := range e.Reports() {
		res[rep.Level]++
	}
	return res
}
