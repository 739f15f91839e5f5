package main

import (
	"fmt"
	"go/token"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sirkon/a11yful/internal/config"
	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/runner"
	"github.com/sirkon/a11yful/internal/semantics"
	"github.com/sirkon/a11yful/internal/spans"
)

func explainCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "explain FILE:LINE[:COL]",
		Short: "Show how the element at the location is understood",
		Long: `Show the element type, roles, interactivity, visibility and accessible name of the innermost
element at the location, followed by reports the element and its descendants got.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var loc location
			if err := loc.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), false)
			cfg, err := config.NewLoader(logger).Load(configPath, ".")
			if err != nil {
				return err
			}
			r, err := runner.New(cfg, runner.Options{Jobs: 1, Logger: logger})
			if err != nil {
				return err
			}

			res, err := r.CheckFile(cmd.Context(), loc.file)
			if err != nil {
				return err
			}
			return explain(cmd.OutOrStdout(), r.Resolver(), res, loc)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file, looked up from the current directory upwards by default")
	return cmd
}

func explain(w io.Writer, resolver *semantics.Resolver, res *runner.FileResult, loc location) error {
	var tf *token.File
	res.Fset.Iterate(func(f *token.File) bool {
		tf = f
		return false
	})
	if tf == nil || loc.line > tf.LineCount() {
		return fmt.Errorf("%s: line %d is out of range", loc, loc.line)
	}
	end := token.Pos(tf.Base() + tf.Size())
	if loc.line < tf.LineCount() {
		end = tf.LineStart(loc.line + 1)
	}
	pos := tf.LineStart(loc.line) + token.Pos(loc.column-1)
	if pos >= end {
		return fmt.Errorf("%s: column %d is out of range", loc, loc.column)
	}

	e := spans.Build(res.File).At(pos)
	if e == nil {
		return fmt.Errorf("%s: no element here", loc)
	}

	tag := resolver.ElementType(e)
	exp := resolver.ExplicitRole(e.Attrs)
	class := resolver.ClassifyElement(e)
	name := resolver.FindAccessibleName(e, semantics.NamePolicy{})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "element\t<%s> at %s\n", e.Name, res.Fset.Position(e.Pos))
	fmt.Fprintf(tw, "type\t%s\n", tag)
	switch exp.State {
	case semantics.RoleAbsent:
		fmt.Fprintf(tw, "explicit role\t%s\n", exp.State)
	default:
		fmt.Fprintf(tw, "explicit role\t%s %q", exp.State, exp.Raw)
		if exp.Role != "" {
			fmt.Fprintf(tw, " as %s", exp.Role)
		}
		if len(exp.Branches) > 0 {
			fmt.Fprintf(tw, " of %s", strings.Join(exp.Branches, ", "))
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprintf(tw, "implicit role\t%s\n", orNone(resolver.ImplicitRole(tag, e.Attrs)))
	fmt.Fprintf(tw, "interactivity\t%s (%s)\n", class.Verdict, class.Reason)
	fmt.Fprintf(tw, "hidden\t%s\n", semantics.IsHidden(tag, e.Attrs))

	switch {
	case name.Found:
		fmt.Fprintf(tw, "accessible name\t%s at %s\n", name.Source, res.Fset.Position(nodePos(name.At)))
	case name.Inconclusive():
		fmt.Fprintf(tw, "accessible name\tinconclusive, %d unresolved expressions\n", name.Unresolved)
	default:
		fmt.Fprintf(tw, "accessible name\tnone\n")
	}
	fmt.Fprintf(tw, "name search\t%d nodes visited, %d levels deep\n", name.Visited, name.Deepest)
	if err := tw.Flush(); err != nil {
		return err
	}

	var reps []reporting.Report
	for _, rep := range res.Reports {
		if rep.Pos >= e.Pos && rep.Pos < e.End {
			reps = append(reps, rep)
		}
	}
	if len(reps) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return reporting.Write(w, res.Fset, reps, reporting.FormatText)
}

func nodePos(n jsx.Node) token.Pos {
	pos, _ := n.Span()
	return pos
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
