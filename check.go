package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sirkon/a11yful/internal/config"
	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/rules"
	"github.com/sirkon/a11yful/internal/runner"
)

type checkFlags struct {
	config      string
	format      reporting.Format
	jobs        int
	metricsFile string
	watch       bool
	verbose     bool
}

func checkCommand() *cobra.Command {
	flags := checkFlags{format: reporting.FormatText}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check files, directories and globs",
		Long: `Check files, directories and doublestar globs. Directories are searched recursively
skipping node_modules, vendor and dot directories. The current directory is checked when no path
is given. The exit status is 1 when any error level report is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.config, "config", "", "configuration file, looked up from the current directory upwards by default")
	fs.Var(&flags.format, "format", "output format: text or json")
	fs.IntVarP(&flags.jobs, "jobs", "j", 0, "files checked at once, the number of CPUs by default")
	fs.StringVar(&flags.metricsFile, "metrics-file", "", "write run metrics to this file in the Prometheus textfile format")
	fs.BoolVarP(&flags.watch, "watch", "w", false, "keep running and recheck files as they change")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug messages")
	return cmd
}

func runCheck(ctx context.Context, stdout, stderr io.Writer, paths []string, flags checkFlags) error {
	logger := newLogger(stderr, flags.verbose)

	cfg, err := config.NewLoader(logger).Load(flags.config, ".")
	if err != nil {
		return err
	}
	metrics := runner.NewMetrics()
	r, err := runner.New(cfg, runner.Options{
		Jobs:    flags.jobs,
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		return err
	}

	files, err := runner.Collect(paths)
	if err != nil {
		return err
	}
	logger.Debug("files collected", slog.Int("count", len(files)))

	failed, err := checkOnce(ctx, r, stdout, files, flags.format)
	if err != nil {
		return err
	}
	if flags.metricsFile != "" {
		if err := metrics.WriteFile(flags.metricsFile); err != nil {
			return err
		}
	}

	if !flags.watch {
		if failed {
			return errReportsFound
		}
		return nil
	}

	w, err := runner.NewWatcher(runner.WatchRoots(paths), runner.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Warn("close watcher", slog.Any("err", err))
		}
	}()

	logger.Info("watching for changes", slog.Any("paths", paths))
	return w.Run(ctx, func(ctx context.Context, files []string) {
		if _, err := checkOnce(ctx, r, stdout, files, flags.format); err != nil {
			logger.Error("recheck failed", slog.Any("err", err))
		}
		if flags.metricsFile != "" {
			if err := metrics.WriteFile(flags.metricsFile); err != nil {
				logger.Error("update metrics", slog.Any("err", err))
			}
		}
	})
}

// checkOnce checks files and writes reports. It tells if any of them is at the error level.
func checkOnce(ctx context.Context, r *runner.Runner, out io.Writer, files []string, format reporting.Format) (bool, error) {
	res, err := r.Run(ctx, files)
	if err != nil {
		return false, err
	}
	if err := reporting.Write(out, res.Fset, res.Reports, format); err != nil {
		return false, err
	}
	return res.Count()[rules.LevelError] > 0, nil
}
