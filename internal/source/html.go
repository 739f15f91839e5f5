package source

import (
	"bytes"
	"errors"
	"go/token"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/sirkon/a11yful/internal/jsx"
	"github.com/sirkon/a11yful/internal/taxonomy"
)

// parseHTML builds a tree out of plain markup. Every attribute value is a string literal
// and there are no components. Unbalanced end tags are reported and skipped, elements left
// open at the end of input are closed silently the way browsers do.
func parseHTML(file *token.File, src []byte) *jsx.File {
	res := &jsx.File{Name: file.Name()}
	z := html.NewTokenizer(bytes.NewReader(src))

	var (
		stack  []*jsx.Element
		offset int
	)
	top := func() *jsx.Element {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	appendChild := func(n jsx.Node) {
		if p := top(); p != nil {
			p.Children = append(p.Children, n)
		}
	}

	for {
		tt := z.Next()
		raw := z.Raw()
		start, end := offset, offset+len(raw)
		offset = end

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				res.Problems = append(res.Problems, jsx.Problem{
					Pos:     file.Pos(min(start, file.Size())),
					Message: err.Error(),
				})
			}
			for _, e := range stack {
				e.End = file.Pos(file.Size())
			}
			return res

		case html.StartTagToken, html.SelfClosingTagToken:
			e := htmlElement(z, raw)
			e.Parent = top()
			e.Pos = file.Pos(start)
			e.End = file.Pos(end)
			if e.Parent == nil {
				res.Roots = append(res.Roots, e)
			} else {
				e.Parent.Children = append(e.Parent.Children, e)
			}
			if tt == html.StartTagToken && !isVoid(e.Name) {
				stack = append(stack, e)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			idx := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Name == string(name) {
					idx = i
					break
				}
			}
			if idx < 0 {
				if !isVoid(string(name)) {
					res.Problems = append(res.Problems, jsx.Problem{
						Pos:     file.Pos(start),
						Message: "unexpected closing tag </" + string(name) + ">",
					})
				}
				continue
			}
			for _, e := range stack[idx:] {
				e.End = file.Pos(end)
			}
			stack = stack[:idx]

		case html.TextToken:
			if p := top(); p != nil && (p.Name == "script" || p.Name == "style") {
				continue
			}
			appendChild(&jsx.Text{
				Value: string(z.Text()),
				Pos:   file.Pos(start),
				End:   file.Pos(end),
			})
		}
	}
}

func htmlElement(z *html.Tokenizer, raw []byte) *jsx.Element {
	name, more := z.TagName()
	e := &jsx.Element{Name: string(name)}

	valued := rawAttrValued(raw)
	for i := 0; more; i++ {
		var key, val []byte
		key, val, more = z.TagAttr()
		a := &jsx.Attr{
			Name:  string(key),
			Value: jsx.Str(string(val)),
		}
		if i < len(valued) && !valued[i] {
			a.Value = jsx.Implicit()
		}
		e.Attrs = append(e.Attrs, a)
	}
	return e
}

// rawAttrValued scans a raw start tag and tells for each attribute in order whether it has
// a value. The tokenizer reports both <input checked> and <input checked=""> as an empty
// value, while only the first one is a bare flag.
func rawAttrValued(raw []byte) []bool {
	s := string(raw)
	i := strings.IndexAny(s, htmlSpace+"/>")
	if i < 0 {
		return nil
	}

	var res []bool
	for i < len(s) {
		for i < len(s) && (strings.IndexByte(htmlSpace, s[i]) >= 0 || s[i] == '/') {
			i++
		}
		if i >= len(s) || s[i] == '>' {
			break
		}

		// A name may start with = which is then a part of it.
		i++
		for i < len(s) && strings.IndexByte(htmlSpace+"/>=", s[i]) < 0 {
			i++
		}
		j := skipSpace(s, i)
		if j >= len(s) || s[j] != '=' {
			res = append(res, false)
			continue
		}

		i = skipSpace(s, j+1)
		res = append(res, true)
		if i >= len(s) {
			break
		}
		switch q := s[i]; q {
		case '"', '\'':
			end := strings.IndexByte(s[i+1:], q)
			if end < 0 {
				return res
			}
			i += end + 2
		default:
			for i < len(s) && strings.IndexByte(htmlSpace+">", s[i]) < 0 {
				i++
			}
		}
	}
	return res
}

const htmlSpace = " \t\r\n\f"

func skipSpace(s string, i int) int {
	for i < len(s) && strings.IndexByte(htmlSpace, s[i]) >= 0 {
		i++
	}
	return i
}

func isVoid(name string) bool {
	el, ok := taxonomy.ElementDefaults(name)
	return ok && el.Void
}
