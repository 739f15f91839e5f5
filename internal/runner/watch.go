package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirkon/a11yful/internal/source"
)

// DefaultDebounce is how long changes are collected before a rerun.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports batches of changed source files under a set of roots.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewWatcher starts watching directories of roots recursively. Roots that are files have their
// directory watched.
func NewWatcher(roots []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("setup watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		pending:  map[string]struct{}{},
	}
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", root, err)
		}
		if !info.IsDir() {
			root = filepath.Dir(root)
		}
		if err := w.addRecursive(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("cannot watch directory", slog.String("dir", path), slog.Any("err", err))
			return nil
		}
		w.logger.Debug("watching directory", slog.String("dir", path))
		return nil
	})
}

// Run delivers changed files to onChange until the context is done. Changes are collected for
// the debounce period before being delivered as a single sorted batch of existing files.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, files []string)) error {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch failure", slog.Any("err", err))

		case <-ticker.C:
			if files := w.flush(); len(files) > 0 {
				onChange(ctx, files)
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !skippedDir(filepath.Base(path)) {
				if err := w.addRecursive(path); err != nil {
					w.logger.Warn("cannot watch new directory", slog.String("dir", path), slog.Any("err", err))
				}
			}
			return
		}
	}
	if !source.Supported(path) || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
		return
	}

	w.mu.Lock()
	w.pending[path] = struct{}{}
	w.mu.Unlock()
	w.logger.Debug("file changed", slog.String("file", path), slog.String("op", event.Op.String()))
}

func (w *Watcher) flush() []string {
	w.mu.Lock()
	pending := w.pending
	w.pending = map[string]struct{}{}
	w.mu.Unlock()

	var files []string
	for path := range pending {
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	slices.Sort(files)
	return files
}
