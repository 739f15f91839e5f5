// Package spans indexes elements of a file by source position.
package spans

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/a11yful/internal/jsx"
)

// Index finds the innermost element covering a position.
type Index struct {
	tree *rbtree.Tree[*elementSpan]
}

// New creates an empty index.
func New() *Index {
	return &Index{tree: rbtree.New[*elementSpan]()}
}

// Build indexes every element of the file.
func Build(f *jsx.File) *Index {
	ix := New()
	for e := range f.Elements() {
		ix.Add(e)
	}
	return ix
}

// Add registers an element with its span. Spans are expected to nest: elements crossing
// each other partially are not indexed and Add returns false for them.
func (ix *Index) Add(e *jsx.Element) bool {
	if !e.Pos.IsValid() || e.End <= e.Pos {
		return false
	}
	return attachInto(ix.tree, &elementSpan{start: e.Pos, end: e.End - 1, elem: e})
}

// At returns the innermost element covering pos, nil if there is none.
func (ix *Index) At(pos token.Pos) *jsx.Element {
	res := lookup(ix.tree, pos)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}
