package spans

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/a11yful/internal/jsx"
)

// elementSpan stores an inclusive [start,end] span of an element and a nested tree for
// spans it contains.
type elementSpan struct {
	start token.Pos
	end   token.Pos

	elem     *jsx.Element
	children *rbtree.Tree[*elementSpan]
}

func keyAt(pos token.Pos) *elementSpan {
	return &elementSpan{start: pos, end: pos}
}

// Cmp orders disjoint spans. Overlapping spans compare equal: the tree then hands the
// existing one back from InsertReturn and attachInto builds the containment hierarchy.
func (n *elementSpan) Cmp(other *elementSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *elementSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts s into t:
//   - s overlapping nothing becomes a sibling;
//   - s containing the overlapping r takes r's place in the tree and r moves under s;
//   - s contained in r goes down into r's children.
func attachInto(t *rbtree.Tree[*elementSpan], s *elementSpan) bool {
	r := t.InsertReturn(s)
	if r == s {
		return true
	}

	switch {
	case contains(s, r):
		old := *r
		*r = *s
		if r.children == nil {
			r.children = rbtree.New[*elementSpan]()
		}
		return attachInto(r.children, &old)

	case contains(r, s):
		if r.children == nil {
			r.children = rbtree.New[*elementSpan]()
		}
		return attachInto(r.children, s)

	default:
		return false
	}
}

func descendSearch(n *elementSpan, pos token.Pos) *jsx.Element {
	if n.children == nil {
		return n.elem
	}
	child := lookup(n.children, pos)
	if child == nil {
		return n.elem
	}
	return descendSearch(child, pos)
}

// lookup returns the span of t covering pos. Spans of a single tree are disjoint and come in
// order, the walk stops at the first one starting past pos.
func lookup(t *rbtree.Tree[*elementSpan], pos token.Pos) *elementSpan {
	p := keyAt(pos)
	for s := range t.Iter() {
		switch s.Cmp(p) {
		case 0:
			return s
		case 1:
			return nil
		}
	}
	return nil
}
