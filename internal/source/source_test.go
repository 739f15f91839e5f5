package source

import (
	"context"
	"go/token"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/a11yful/internal/jsx"
)

func parse(t *testing.T, name, src string) (*token.FileSet, *jsx.File) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := Parse(context.Background(), fset, name, []byte(src))
	require.NoError(t, err)
	return fset, f
}

func elements(f *jsx.File) []*jsx.Element {
	return slices.Collect(f.Elements())
}

func TestDialectOf(t *testing.T) {
	tests := []struct {
		name string
		want Dialect
		ok   bool
	}{
		{"a.jsx", DialectJSX, true},
		{"a.JS", DialectJSX, true},
		{"pages/index.tsx", DialectTSX, true},
		{"index.html", DialectHTML, true},
		{"a.ts", DialectInvalid, false},
		{"Makefile", DialectInvalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DialectOf(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}

	var d Dialect
	require.NoError(t, d.UnmarshalText([]byte("tsx")))
	require.Equal(t, DialectTSX, d)
	require.Error(t, d.UnmarshalText([]byte("vue")))
}

func TestParseUnsupported(t *testing.T) {
	_, err := Parse(context.Background(), token.NewFileSet(), "a.vue", nil)
	require.Error(t, err)
}

func TestScriptAttributes(t *testing.T) {
	_, f := parse(t, "a.jsx", `
const A = () => <div
	role="button"
	tabIndex={-1}
	hidden
	aria-hidden={false}
	title={'xA'}
	data={null}
	alt={undefined}
	label={ok ? "yes" : "no"}
	onClick={handle}
	{...rest}
/>;
`)
	require.Len(t, f.Roots, 1)
	e := f.Roots[0]
	require.Equal(t, "div", e.Name)
	require.False(t, e.Component)

	want := []struct {
		name string
		kind jsx.ValueKind
	}{
		{"role", jsx.ValueString},
		{"tabIndex", jsx.ValueNumber},
		{"hidden", jsx.ValueImplicit},
		{"aria-hidden", jsx.ValueBool},
		{"title", jsx.ValueString},
		{"data", jsx.ValueNull},
		{"alt", jsx.ValueUndefined},
		{"label", jsx.ValueConditional},
		{"onClick", jsx.ValueExpr},
	}
	require.Len(t, e.Attrs, len(want)+1)
	for i, w := range want {
		require.Equal(t, w.name, e.Attrs[i].Name)
		require.Equal(t, w.kind, e.Attrs[i].Value.Kind, w.name)
	}
	require.True(t, e.Attrs[len(want)].Spread)

	require.Equal(t, "button", e.Attrs[0].Value.Str)
	require.Equal(t, float64(-1), e.Attrs[1].Value.Num)
	require.Equal(t, "xA", e.Attrs[4].Value.Str)
	cond := e.Attrs[7].Value.Cond
	require.Equal(t, "ok", cond.Test)
	require.Equal(t, "yes", cond.Then.Str)
	require.Equal(t, "no", cond.Else.Str)
}

func TestScriptChildren(t *testing.T) {
	_, f := parse(t, "a.jsx", `
function App() {
	return (
		<Layout>
			<>
				<a href="/">Home</a>
				{items.map(i => <Item key={i} />)}
				{"literal"}
			</>
		</Layout>
	);
}
`)
	require.Len(t, f.Roots, 2)
	layout := f.Roots[0]
	require.Equal(t, "Layout", layout.Name)
	require.True(t, layout.Component)

	var frag *jsx.Element
	for _, c := range layout.Children {
		if e, ok := c.(*jsx.Element); ok {
			frag = e
		}
	}
	require.NotNil(t, frag)
	require.True(t, frag.IsFragment())
	require.Same(t, layout, frag.Parent)

	var names []string
	for _, e := range elements(f) {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"Layout", "", "a", "Item"}, names)

	item := f.Roots[1]
	require.Same(t, frag, item.Parent)

	var exprs []jsx.Value
	for _, c := range frag.Children {
		if x, ok := c.(*jsx.Expr); ok {
			exprs = append(exprs, x.Value)
		}
	}
	require.Len(t, exprs, 2)
	require.Equal(t, jsx.ValueExpr, exprs[0].Kind)
	require.Equal(t, jsx.ValueString, exprs[1].Kind)
	require.Equal(t, "literal", exprs[1].Str)
}

func TestScriptMemberComponent(t *testing.T) {
	_, f := parse(t, "a.tsx", `
export const X = (p: Props): JSX.Element => <UI.Button type="submit">Go</UI.Button>;
`)
	require.Len(t, f.Roots, 1)
	require.Equal(t, "UI.Button", f.Roots[0].Name)
	require.True(t, f.Roots[0].Component)
	require.Empty(t, f.Problems)
}

func TestScriptPositions(t *testing.T) {
	fset, f := parse(t, "a.jsx", "const a = 1;\nconst b = <img src=\"x\" />;\n")
	require.Len(t, f.Roots, 1)
	p := fset.Position(f.Roots[0].Pos)
	require.Equal(t, "a.jsx", p.Filename)
	require.Equal(t, 2, p.Line)
	require.Equal(t, 11, p.Column)
}

func TestScriptNestedPositions(t *testing.T) {
	src := "const a = (\n  <>\n    <button type=\"button\">Save</button>\n    {<span>Go</span>}\n  </>\n);\n"
	fset, f := parse(t, "a.jsx", src)

	type place struct {
		name   string
		line   int
		column int
	}
	var got []place
	for _, e := range elements(f) {
		p := fset.Position(e.Pos)
		got = append(got, place{name: e.Name, line: p.Line, column: p.Column})
	}
	require.Equal(t, []place{
		{name: "", line: 2, column: 3},
		{name: "button", line: 3, column: 5},
		{name: "span", line: 4, column: 6},
	}, got)

	button := elements(f)[1]
	require.Equal(t, "button", button.Name)
	require.Equal(t, 3, fset.Position(button.Attrs[0].Pos).Line)
	require.Equal(t, 13, fset.Position(button.Attrs[0].Pos).Column)
}

func TestScriptProblems(t *testing.T) {
	_, f := parse(t, "a.jsx", "const a = <div>\n")
	require.NotEmpty(t, f.Problems)
}

func TestHTML(t *testing.T) {
	fset, f := parse(t, "index.html", `<!doctype html>
<html lang="en">
<body>
	<img src="a.png" alt>
	<label for="x">Name</label>
	<input id="x" disabled>
	<script>if (a < b) {}</script>
	</span>
</body>
</html>
`)
	require.Len(t, f.Roots, 1)

	byName := map[string]*jsx.Element{}
	for _, e := range elements(f) {
		byName[e.Name] = e
	}

	img := byName["img"]
	require.NotNil(t, img)
	require.Empty(t, img.Children)
	require.Equal(t, "body", img.Parent.Name)
	alt, _ := img.Attr("alt")
	require.Equal(t, jsx.ValueImplicit, alt.Value.Kind)
	src, _ := img.Attr("src")
	require.Equal(t, "a.png", src.Value.Str)
	require.Equal(t, 4, fset.Position(img.Pos).Line)

	label := byName["label"]
	require.Len(t, label.Children, 1)
	require.Equal(t, "Name", label.Children[0].(*jsx.Text).Value)

	input := byName["input"]
	require.Same(t, byName["body"], input.Parent)
	disabled, _ := input.Attr("disabled")
	require.Equal(t, jsx.ValueImplicit, disabled.Value.Kind)

	require.Empty(t, byName["script"].Children)

	require.Len(t, f.Problems, 1)
	require.Equal(t, 8, fset.Position(f.Problems[0].Pos).Line)
}

func TestRawAttrValued(t *testing.T) {
	tests := []struct {
		raw  string
		want []bool
	}{
		{`<br>`, nil},
		{`<input value="checked" checked data-x = 1>`, []bool{true, false, true}},
		{`<img alt src='a b.png'/>`, []bool{false, true}},
		{`<a href=/x/ download>`, []bool{true, false}},
		{`<option selected/>`, []bool{false}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, rawAttrValued([]byte(tt.raw)), tt.raw)
	}
}

func TestUnescapeJS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`a\nb`, "a\nb"},
		{`\x41B\u{1F600}`, "AB\U0001F600"},
		{`\'q\'`, `'q'`},
		{`tail\`, `tail\`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, unescapeJS(tt.in), tt.in)
	}
}
