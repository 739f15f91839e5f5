package source

import (
	"context"
	"go/token"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"golang.org/x/net/html"

	"github.com/sirkon/a11yful/internal/jsx"
)

func parseScript(ctx context.Context, file *token.File, src []byte, d Dialect) (*jsx.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	switch d {
	case DialectTSX:
		parser.SetLanguage(tsx.GetLanguage())
	default:
		parser.SetLanguage(javascript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	b := &scriptBuilder{
		src:  src,
		file: file,
		out:  &jsx.File{Name: file.Name()},
	}
	b.scan(tree.RootNode(), nil)
	if tree.RootNode().HasError() {
		b.problems(tree.RootNode())
	}
	return b.out, nil
}

// scriptBuilder converts a tree-sitter syntax tree into a jsx tree. Markup nested into
// expressions becomes an extra root whose Parent is the element owning the expression.
type scriptBuilder struct {
	src  []byte
	file *token.File
	out  *jsx.File
}

func (b *scriptBuilder) pos(offset uint32) token.Pos {
	return b.file.Pos(int(offset))
}

// start is the position of the first non-blank byte of the node. Some markup nodes of the
// grammar begin with the whitespace preceding them.
func (b *scriptBuilder) start(n *sitter.Node) token.Pos {
	offset, end := n.StartByte(), n.EndByte()
	for offset < end && int(offset) < len(b.src) && isBlank(b.src[offset]) {
		offset++
	}
	if offset == end {
		offset = n.StartByte()
	}
	return b.pos(offset)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (b *scriptBuilder) text(n *sitter.Node) string {
	return n.Content(b.src)
}

// scan looks for markup in an arbitrary syntax subtree.
func (b *scriptBuilder) scan(n *sitter.Node, owner *jsx.Element) {
	if n == nil {
		return
	}
	if isMarkup(n) {
		b.root(n, owner)
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		b.scan(n.NamedChild(i), owner)
	}
}

// root builds markup that is not a child of other markup. The slot is taken before building
// so that roots stay in source order.
func (b *scriptBuilder) root(n *sitter.Node, owner *jsx.Element) *jsx.Element {
	idx := len(b.out.Roots)
	b.out.Roots = append(b.out.Roots, nil)
	e := b.element(n, owner)
	b.out.Roots[idx] = e
	return e
}

// problems collects syntax errors tree-sitter recovered from.
func (b *scriptBuilder) problems(n *sitter.Node) {
	switch {
	case n.IsMissing():
		b.problem(n, "missing "+n.Type())
		return
	case n.Type() == "ERROR":
		b.problem(n, "syntax error")
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.HasError() {
			b.problems(c)
		}
	}
}

func (b *scriptBuilder) problem(n *sitter.Node, msg string) {
	b.out.Problems = append(b.out.Problems, jsx.Problem{
		Pos:     b.start(n),
		Message: msg,
	})
}

func isMarkup(n *sitter.Node) bool {
	switch n.Type() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	default:
		return false
	}
}

func (b *scriptBuilder) element(n *sitter.Node, owner *jsx.Element) *jsx.Element {
	e := &jsx.Element{
		Parent: owner,
		Pos:    b.start(n),
		End:    b.pos(n.EndByte()),
	}

	open := n
	if n.Type() != "jsx_self_closing_element" {
		open = n.ChildByFieldName("open_tag")
		if open == nil {
			open = firstNamedOfType(n, "jsx_opening_element")
		}
	}
	if open != nil {
		if name := open.ChildByFieldName("name"); name != nil {
			e.Name = b.text(name)
		}
		for i := 0; i < int(open.NamedChildCount()); i++ {
			if a := b.attr(open.NamedChild(i), e); a != nil {
				e.Attrs = append(e.Attrs, a)
			}
		}
	}
	e.Component = jsx.IsComponentName(e.Name)

	if n.Type() == "jsx_self_closing_element" {
		return e
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "jsx_opening_element", "jsx_closing_element":
		case "jsx_text", "html_character_reference":
			e.Children = append(e.Children, &jsx.Text{
				Value: html.UnescapeString(b.text(c)),
				Pos:   b.pos(c.StartByte()),
				End:   b.pos(c.EndByte()),
			})
		case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
			e.Children = append(e.Children, b.element(c, e))
		case "jsx_expression":
			e.Children = append(e.Children, &jsx.Expr{
				Value: b.expression(c, e),
				Pos:   b.start(c),
				End:   b.pos(c.EndByte()),
			})
		default:
			b.scan(c, e)
		}
	}
	return e
}

func (b *scriptBuilder) attr(n *sitter.Node, owner *jsx.Element) *jsx.Attr {
	switch n.Type() {
	case "jsx_expression":
		inner := firstMeaningful(n)
		if inner != nil && inner.Type() == "spread_element" {
			b.scan(inner, owner)
			return &jsx.Attr{
				Spread: true,
				Value:  jsx.Code(b.text(inner)),
				Pos:    b.start(n),
			}
		}
		return nil
	case "jsx_attribute":
	default:
		return nil
	}

	if n.NamedChildCount() == 0 {
		return nil
	}
	a := &jsx.Attr{
		Name:  b.text(n.NamedChild(0)),
		Value: jsx.Implicit(),
		Pos:   b.start(n),
	}
	if n.NamedChildCount() < 2 {
		return a
	}

	v := n.NamedChild(1)
	switch v.Type() {
	case "string":
		a.Value = jsx.Str(stripQuotes(b.text(v)))
	case "jsx_expression":
		a.Value = b.expression(v, owner)
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		a.Value = jsx.ElementValue(b.root(v, owner))
	default:
		a.Value = jsx.Code(b.text(v))
	}
	return a
}

// expression reads the content of {...}.
func (b *scriptBuilder) expression(n *sitter.Node, owner *jsx.Element) jsx.Value {
	inner := firstMeaningful(n)
	if inner == nil {
		return jsx.Undefined()
	}
	if inner.Type() == "spread_element" {
		b.scan(inner, owner)
		return jsx.Code(b.text(inner))
	}
	return b.value(inner, owner)
}

// value folds literal expressions and records everything else as opaque code.
func (b *scriptBuilder) value(n *sitter.Node, owner *jsx.Element) jsx.Value {
	switch n.Type() {
	case "parenthesized_expression":
		if inner := firstMeaningful(n); inner != nil {
			return b.value(inner, owner)
		}
	case "string":
		return jsx.Str(unescapeJS(stripQuotes(b.text(n))))
	case "template_string":
		if firstNamedOfType(n, "template_substitution") == nil {
			return jsx.Str(unescapeJS(stripQuotes(b.text(n))))
		}
	case "number":
		if f, ok := parseNumber(b.text(n)); ok {
			return jsx.Num(f)
		}
	case "true":
		return jsx.Bool(true)
	case "false":
		return jsx.Bool(false)
	case "null":
		return jsx.Null()
	case "undefined":
		return jsx.Undefined()
	case "identifier":
		if b.text(n) == "undefined" {
			return jsx.Undefined()
		}
	case "unary_expression":
		if v, ok := b.signedNumber(n); ok {
			return v
		}
	case "ternary_expression":
		cond := n.ChildByFieldName("condition")
		then := n.ChildByFieldName("consequence")
		els := n.ChildByFieldName("alternative")
		if cond != nil && then != nil && els != nil {
			tv, ev := b.literal(then), b.literal(els)
			if tv.IsLiteral() && ev.IsLiteral() {
				return jsx.Cond(b.text(cond), tv, ev)
			}
		}
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return jsx.ElementValue(b.root(n, owner))
	}

	b.scan(n, owner)
	return jsx.Code(b.text(n))
}

// literal is value restricted to literals, it never builds markup.
func (b *scriptBuilder) literal(n *sitter.Node) jsx.Value {
	switch n.Type() {
	case "parenthesized_expression":
		if inner := firstMeaningful(n); inner != nil {
			return b.literal(inner)
		}
	case "string", "template_string", "number", "true", "false", "null", "undefined",
		"identifier", "unary_expression":
		if !hasMarkup(n) {
			return b.value(n, nil)
		}
	}
	return jsx.Code(b.text(n))
}

func (b *scriptBuilder) signedNumber(n *sitter.Node) (jsx.Value, bool) {
	op := n.ChildByFieldName("operator")
	arg := n.ChildByFieldName("argument")
	if op == nil || arg == nil || arg.Type() != "number" {
		return jsx.Value{}, false
	}
	f, ok := parseNumber(b.text(arg))
	if !ok {
		return jsx.Value{}, false
	}
	switch b.text(op) {
	case "-":
		return jsx.Num(-f), true
	case "+":
		return jsx.Num(f), true
	default:
		return jsx.Value{}, false
	}
}

func hasMarkup(n *sitter.Node) bool {
	if isMarkup(n) {
		return true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if hasMarkup(n.NamedChild(i)) {
			return true
		}
	}
	return false
}

func firstNamedOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// firstMeaningful returns the first named child that is not a comment.
func firstMeaningful(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			return c
		}
	}
	return nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '\'', '`':
			if s[len(s)-1] == s[0] {
				return s[1 : len(s)-1]
			}
		}
	}
	return s
}

func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if strings.HasSuffix(s, "n") {
		s = strings.TrimSuffix(s, "n")
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// unescapeJS resolves escape sequences of a JavaScript string literal body.
func unescapeJS(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
		case 'u':
			if r, n, ok := readUnicodeEscape(s[i+1:]); ok {
				sb.WriteRune(r)
				i += n
				continue
			}
			sb.WriteByte('u')
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					sb.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			sb.WriteByte('x')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// readUnicodeEscape reads XXXX or {X...} following \u.
func readUnicodeEscape(s string) (rune, int, bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), 4, true
}
