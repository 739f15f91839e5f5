package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sirkon/a11yful/internal/rules"
)

const doc = `a11yful statically checks JSX, TSX and HTML markup for accessibility problems`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errReportsFound):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "a11yful:", err)
		os.Exit(2)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "a11yful",
		Short:         doc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		checkCommand(),
		explainCommand(),
		rulesCommand(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List rules with their default levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range rules.All() {
				slug := r.Slug()
				if r.Deprecated() {
					slug += " (deprecated)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Code(), slug, r.DefaultLevel(), r.Description())
			}
			return tw.Flush()
		},
	}
}
