package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileNames are names of configuration files looked up, in preference order.
var FileNames = []string{".a11yful.yaml", ".a11yful.yml"}

// Loader finds and reads configuration files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger means slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the file at path when it is not empty. Otherwise it looks for a configuration in
// dir and its parents and falls back to defaults when there is none.
func (l *Loader) Load(path, dir string) (*Config, error) {
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			l.logger.Debug("no configuration found, using defaults", slog.String("dir", dir))
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("configuration loaded", slog.String("path", path))
	return cfg, nil
}

// Find searches dir and its parents for a configuration file. It returns an empty path when
// there is none up to the filesystem root.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			switch {
			case err == nil && !info.IsDir():
				return path, nil
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return "", fmt.Errorf("look for configuration: %w", err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
