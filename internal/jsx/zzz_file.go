package jsx

import (
	"go/token"
	"iter"
)

// File is a parsed source file.
type File struct {
	Name string

	// Roots are elements that are not listed among children of other elements, in source order:
	// top level markup and markup found inside expression holes or attribute values.
	Roots []*Element

	// Problems are syntax errors the frontend recovered from.
	Problems []Problem
}

// Problem is a recoverable syntax error.
type Problem struct {
	Pos     token.Pos
	Message string
}

// Elements iterates over every element of the file in preorder.
func (f *File) Elements() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for _, root := range f.Roots {
			if !walk(root, yield) {
				return
			}
		}
	}
}

// Walk visits e and its element descendants in preorder until yield returns false.
func Walk(e *Element, yield func(*Element) bool) {
	walk(e, yield)
}

func walk(e *Element, yield func(*Element) bool) bool {
	stack := []*Element{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(cur) {
			return false
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			if child, ok := cur.Children[i].(*Element); ok {
				stack = append(stack, child)
			}
		}
	}
	return true
}
