package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/a11yful/internal/config"
	"github.com/sirkon/a11yful/internal/reporting"
	"github.com/sirkon/a11yful/internal/rules"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/App.jsx":                "",
		"src/components/Button.tsx":  "",
		"src/util.ts":                "",
		"public/index.html":          "",
		"node_modules/lib/index.js":  "",
		"vendor/x.jsx":               "",
		".cache/a.jsx":               "",
		"src/components/README.md":   "",
		"src/components/.hidden/a.js": "",
	})

	got, err := Collect([]string{root})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "public", "index.html"),
		filepath.Join(root, "src", "App.jsx"),
		filepath.Join(root, "src", "components", "Button.tsx"),
	}, got)

	got, err = Collect([]string{
		filepath.Join(root, "src", "**", "*.tsx"),
		filepath.Join(root, "src", "components", "Button.tsx"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "src", "components", "Button.tsx")}, got)

	_, err = Collect([]string{filepath.Join(root, "src", "util.ts")})
	require.Error(t, err)

	_, err = Collect([]string{filepath.Join(root, "missing")})
	require.Error(t, err)
}

func TestWatchRoots(t *testing.T) {
	require.Equal(t,
		[]string{"src", filepath.FromSlash("web/pages"), "."},
		WatchRoots([]string{"src", "web/pages/**/*.tsx", "*.jsx", "src"}),
	)
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.jsx": `const A = () => (
  <div>
    <img src="a.png" />
    <a href="#">Home</a>
  </div>
);
`,
		"b.html": `<html><body><marquee>News</marquee></body></html>
`,
	})
	files, err := Collect([]string{root})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Levels[rules.AF150AnchorIsValid] = rules.LevelWarn

	metrics := NewMetrics()
	r, err := New(cfg, Options{Jobs: 2, Metrics: metrics})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, 2, res.Files)

	type entry struct {
		file  string
		line  int
		rule  rules.Rule
		level rules.Level
	}
	var got []entry
	for _, rep := range res.Reports {
		pos := res.Fset.Position(rep.Pos)
		got = append(got, entry{
			file:  filepath.Base(pos.Filename),
			line:  pos.Line,
			rule:  rep.Rule,
			level: rep.Level,
		})
	}
	require.Equal(t, []entry{
		{"a.jsx", 3, rules.AF010AltText, rules.LevelError},
		{"a.jsx", 4, rules.AF150AnchorIsValid, rules.LevelWarn},
		{"b.html", 1, rules.AF030HTMLHasLang, rules.LevelError},
		{"b.html", 1, rules.AF060NoDistractingElements, rules.LevelError},
	}, got)

	require.Equal(t, map[rules.Level]int{rules.LevelError: 3, rules.LevelWarn: 1}, res.Count())
	require.Equal(t, 2.0, testutil.ToFloat64(metrics.FilesChecked))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Reports.WithLabelValues("alt-text", "error")))

	path := filepath.Join(t.TempDir(), "a11yful.prom")
	require.NoError(t, metrics.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "a11yful_files_checked_total 2")
}

func TestRunParseProblems(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"broken.jsx": "const A = () => <div>;\n",
	})

	metrics := NewMetrics()
	r, err := New(config.Default(), Options{Metrics: metrics})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), []string{filepath.Join(root, "broken.jsx")})
	require.NoError(t, err)

	var parse int
	for _, rep := range res.Reports {
		if rep.Rule == rules.AF900ParseProblem {
			require.Equal(t, reporting.PhaseParse, rep.Phase)
			parse++
		}
	}
	require.Positive(t, parse)
	require.Positive(t, testutil.ToFloat64(metrics.ParseProblems))
}

func TestNewRejectsBadOptions(t *testing.T) {
	cfg, err := config.Parse("bad.yaml", []byte("rules: {anchor-is-valid: {aspects: [nope]}}"))
	require.NoError(t, err)

	_, err = New(cfg, Options{})
	require.Error(t, err)
}

func TestWatcher(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher([]string{root}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changes := make(chan []string, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ctx context.Context, files []string) {
			select {
			case changes <- files:
			default:
			}
		})
	}()

	writeFiles(t, root, map[string]string{
		"notes.txt": "ignored",
		"App.jsx":   "const A = () => <div />;\n",
	})

	select {
	case files := <-changes:
		require.Len(t, files, 1)
		require.True(t, strings.HasSuffix(files[0], "App.jsx"))
	case <-ctx.Done():
		t.Fatal("no change delivered")
	}

	cancel()
	require.NoError(t, <-done)
}
