// Package source turns JSX, TSX and HTML files into jsx trees.
package source

import (
	"context"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/sirkon/a11yful/internal/jsx"
)

// Dialect is a source language the frontends understand.
type Dialect int

const (
	DialectInvalid Dialect = iota
	DialectJSX
	DialectTSX
	DialectHTML
)

var dialectValueMap = map[Dialect]string{
	DialectJSX:  "jsx",
	DialectTSX:  "tsx",
	DialectHTML: "html",
}

var dialectExtensions = map[string]Dialect{
	".js":   DialectJSX,
	".jsx":  DialectJSX,
	".mjs":  DialectJSX,
	".cjs":  DialectJSX,
	".tsx":  DialectTSX,
	".html": DialectHTML,
	".htm":  DialectHTML,
}

func (d Dialect) String() string {
	v, ok := dialectValueMap[d]
	if !ok {
		return fmt.Sprintf("dialect-invalid(%d)", d)
	}
	return v
}

// UnmarshalText to implement encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	for k, v := range dialectValueMap {
		if v == string(text) {
			*d = k
			return nil
		}
	}
	return fmt.Errorf("unknown dialect %q", string(text))
}

// DialectOf picks a dialect by file extension.
func DialectOf(name string) (Dialect, bool) {
	d, ok := dialectExtensions[strings.ToLower(filepath.Ext(name))]
	return d, ok
}

// Supported tells if some frontend handles the file.
func Supported(name string) bool {
	_, ok := DialectOf(name)
	return ok
}

// Parse parses a file with the frontend picked by its extension. The file is registered in
// fset, every position of the result belongs to it.
func Parse(ctx context.Context, fset *token.FileSet, name string, src []byte) (*jsx.File, error) {
	d, ok := DialectOf(name)
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(name))
	}
	return ParseDialect(ctx, fset, name, src, d)
}

// ParseDialect parses a file with an explicitly chosen frontend.
func ParseDialect(ctx context.Context, fset *token.FileSet, name string, src []byte, d Dialect) (*jsx.File, error) {
	file := fset.AddFile(name, -1, len(src))
	file.SetLinesForContent(src)

	switch d {
	case DialectJSX, DialectTSX:
		res, err := parseScript(ctx, file, src, d)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return res, nil
	case DialectHTML:
		return parseHTML(file, src), nil
	default:
		return nil, fmt.Errorf("parse %s: unsupported dialect %s", name, d)
	}
}
