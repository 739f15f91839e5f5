package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/a11yful/internal/source"
)

// skippedDir tells if a directory is never descended into.
func skippedDir(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return name == "node_modules" || name == "vendor" || strings.HasPrefix(name, ".")
}

// ignoredPath tells if any directory of a path is a skipped one.
func ignoredPath(path string) bool {
	dir := filepath.Dir(filepath.Clean(path))
	return slices.ContainsFunc(strings.Split(filepath.ToSlash(dir), "/"), skippedDir)
}

// Collect expands patterns into a sorted list of files to check. A pattern is a file, a
// directory searched recursively or a doublestar glob. Files named explicitly must be supported,
// files found otherwise are filtered by extension.
func Collect(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	add := func(path string) {
		seen[filepath.Clean(path)] = struct{}{}
	}

	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "*?[{") {
			matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("expand %q: %w", pattern, err)
			}
			for _, m := range matches {
				if source.Supported(m) && !ignoredPath(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", pattern, err)
		}
		if !info.IsDir() {
			if !source.Supported(pattern) {
				return nil, fmt.Errorf("collect %s: unsupported file type", pattern)
			}
			add(pattern)
			continue
		}

		err = filepath.WalkDir(pattern, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != pattern && skippedDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if source.Supported(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", pattern, err)
		}
	}

	res := make([]string, 0, len(seen))
	for path := range seen {
		res = append(res, path)
	}
	slices.Sort(res)
	return res, nil
}

// WatchRoots turns patterns into directories to watch: globs are cut down to their static base.
func WatchRoots(patterns []string) []string {
	var roots []string
	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "*?[{") {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
			pattern = filepath.FromSlash(base)
		}
		if !slices.Contains(roots, pattern) {
			roots = append(roots, pattern)
		}
	}
	return roots
}
