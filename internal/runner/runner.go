// Package runner checks sets of files in parallel.
package runner

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/a11yful/internal/checks"
	"github.com/sirkon/a11yful/internal/config"
	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/source"
)

// Options tune a Runner.
type Options struct {
	// Jobs limits files processed at once, runtime.GOMAXPROCS(0) when not positive.
	Jobs int

	Logger  *slog.Logger
	Metrics *Metrics
}

// Runner parses and checks files with a fixed configuration.
type Runner struct {
	suite   *checks.Suite
	levels  reporting.Levels
	jobs    int
	logger  *slog.Logger
	metrics *Metrics
}

// New builds a runner out of the configuration.
func New(cfg *config.Config, opts Options) (*Runner, error) {
	resolver, err := semantics.New(cfg.Resolver)
	if err != nil {
		return nil, fmt.Errorf("setup settings: %w", err)
	}
	suite, err := checks.NewSuite(resolver, cfg.Enabled(), cfg.Options)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		suite:   suite,
		levels:  cfg.Levels,
		jobs:    opts.Jobs,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if r.jobs <= 0 {
		r.jobs = runtime.GOMAXPROCS(0)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}
	return r, nil
}

// Resolver returns the resolver checks run with.
func (r *Runner) Resolver() *semantics.Resolver {
	return r.suite.Resolver()
}

// Result is the outcome of a run.
type Result struct {
	Fset    *token.FileSet
	Reports []reporting.Report
	Files   int
}

// Count returns numbers of reports per level.
func (res *Result) Count() map[rules.Level]int {
	counts := map[rules.Level]int{}
	for _, rep := range res.Reports {
		counts[rep.Level]++
	}
	return counts
}

// Run checks files. Reports come sorted by position. A file that cannot be read or parsed stops
// the run.
func (r *Runner) Run(ctx context.Context, files []string) (*Result, error) {
	fset := token.NewFileSet()
	engine := reporting.NewEngine(r.levels)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for _, path := range files {
		g.Go(func() error {
			_, err := r.checkFile(ctx, fset, engine, path)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Fset:    fset,
		Reports: engine.Sorted(fset),
		Files:   len(files),
	}
	for _, rep := range res.Reports {
		r.metrics.Reports.WithLabelValues(rep.Rule.Slug(), rep.Level.String()).Inc()
	}
	return res, nil
}

// FileResult is the outcome of checking a single file with its syntax tree kept.
type FileResult struct {
	Fset    *token.FileSet
	File    *jsx.File
	Reports []reporting.Report
}

// CheckFile checks a single file.
func (r *Runner) CheckFile(ctx context.Context, path string) (*FileResult, error) {
	fset := token.NewFileSet()
	engine := reporting.NewEngine(r.levels)
	file, err := r.checkFile(ctx, fset, engine, path)
	if err != nil {
		return nil, err
	}
	return &FileResult{
		Fset:    fset,
		File:    file,
		Reports: engine.Sorted(fset),
	}, nil
}

func (r *Runner) checkFile(ctx context.Context, fset *token.FileSet, engine *reporting.Engine, path string) (*jsx.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file, err := source.Parse(ctx, fset, path, src)
	if err != nil {
		return nil, err
	}

	if len(file.Problems) > 0 {
		r.logger.Debug("syntax errors recovered", slog.String("file", path), slog.Int("count", len(file.Problems)))
		r.metrics.ParseProblems.Add(float64(len(file.Problems)))
		parse := engine.Phase(reporting.PhaseParse)
		for _, p := range file.Problems {
			parse.Report(rules.AF900ParseProblem, p.Message, p.Pos)
		}
	}

	r.suite.Run(&checks.Pass{
		File:     file,
		Resolver: r.suite.Resolver(),
		Reporter: engine.Phase(reporting.PhaseCheck),
	})

	r.metrics.FilesChecked.Inc()
	r.metrics.CheckDuration.Observe(time.Since(started).Seconds())
	return file, nil
}
