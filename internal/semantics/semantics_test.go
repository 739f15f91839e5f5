package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/a11yful/internal/jsx"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New(Config{
		ComponentTags: map[string]string{
			"Link":       "a",
			"Icon*":      "svg",
			"*Button":    "button",
			"IconButton": "button",
		},
		PolymorphicProp:   "as",
		ControlComponents: []string{"CustomInput", "*Select"},
	})
	require.NoError(t, err)
	return r
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{MaxSearchDepth: -1})
	require.Error(t, err)

	_, err = New(Config{ComponentTags: map[string]string{"Icon[": "svg"}})
	require.Error(t, err)

	r, err := New(Config{MaxSearchDepth: 100})
	require.NoError(t, err)
	assert.Equal(t, MaxSearchDepth, r.SearchDepth())

	r, err = New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchDepth, r.SearchDepth())
}

func TestElementType(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name string
		elem *jsx.Element
		want ElementType
	}{
		{name: "markup", elem: jsx.E("div", nil), want: "div"},
		{name: "exact", elem: jsx.E("Link", nil), want: "a"},
		{name: "exact-before-glob", elem: jsx.E("IconButton", nil), want: "button"},
		{name: "glob", elem: jsx.E("IconStar", nil), want: "svg"},
		{name: "glob-suffix", elem: jsx.E("SubmitButton", nil), want: "button"},
		{name: "unmapped", elem: jsx.E("Card", nil), want: Opaque},
		{name: "polymorphic", elem: jsx.E("Box", jsx.Attrs{jsx.S("as", "section")}), want: "section"},
		{name: "polymorphic-expr", elem: jsx.E("Box", jsx.Attrs{jsx.A("as", jsx.Code("tag"))}), want: Opaque},
		{name: "fragment", elem: jsx.E("", nil), want: Opaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ElementType(tt.elem))
		})
	}
}

func TestPolymorphicAllowList(t *testing.T) {
	r := MustNew(Config{PolymorphicProp: "as", PolymorphicAllowList: []string{"Box"}})
	assert.Equal(t, ElementType("nav"), r.ElementType(jsx.E("Box", jsx.Attrs{jsx.S("as", "nav")})))
	assert.Equal(t, Opaque, r.ElementType(jsx.E("Card", jsx.Attrs{jsx.S("as", "nav")})))
}

func TestExplicitRole(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name     string
		attrs    jsx.Attrs
		state    RoleState
		role     string
		branches []string
	}{
		{name: "absent", attrs: nil, state: RoleAbsent},
		{name: "single", attrs: jsx.Attrs{jsx.S("role", "button")}, state: RoleResolved, role: "button"},
		{name: "case", attrs: jsx.Attrs{jsx.S("role", "BUTTON")}, state: RoleResolved, role: "button"},
		{
			name:  "fallback",
			attrs: jsx.Attrs{jsx.S("role", "doesnotexist nonexistent button")},
			state: RoleResolved,
			role:  "button",
		},
		{name: "abstract-skipped", attrs: jsx.Attrs{jsx.S("role", "widget link")}, state: RoleResolved, role: "link"},
		{name: "invalid", attrs: jsx.Attrs{jsx.S("role", "foo Bar")}, state: RoleInvalid, role: "Bar"},
		{name: "valueless", attrs: jsx.Attrs{jsx.Flag("role")}, state: RoleInvalid, role: "true"},
		{name: "undefined", attrs: jsx.Attrs{jsx.A("role", jsx.Undefined())}, state: RoleAbsent},
		{name: "expression", attrs: jsx.Attrs{jsx.A("role", jsx.Code("role"))}, state: RoleIndeterminate},
		{name: "spread", attrs: jsx.Attrs{jsx.Spread("props")}, state: RoleIndeterminate},
		{
			name:  "spread-after-role",
			attrs: jsx.Attrs{jsx.S("role", "button"), jsx.Spread("props")},
			state: RoleIndeterminate,
		},
		{
			name:  "role-after-spread",
			attrs: jsx.Attrs{jsx.Spread("props"), jsx.S("role", "button")},
			state: RoleResolved,
			role:  "button",
		},
		{
			name:     "conditional",
			attrs:    jsx.Attrs{jsx.A("role", jsx.Cond("x", jsx.Str("button"), jsx.Str("lnk link")))},
			state:    RoleIndeterminate,
			branches: []string{"button", "link"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ExplicitRole(tt.attrs)
			assert.Equal(t, tt.state, got.State)
			assert.Equal(t, tt.role, got.Role)
			assert.Equal(t, tt.branches, got.Branches)
		})
	}
}

func TestImplicitRole(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name  string
		tag   ElementType
		attrs jsx.Attrs
		want  string
	}{
		{name: "anchor-href", tag: "a", attrs: jsx.Attrs{jsx.S("href", "/")}, want: "link"},
		{name: "anchor-bare", tag: "a", want: ""},
		{name: "img", tag: "img", attrs: jsx.Attrs{jsx.S("alt", "cat")}, want: "img"},
		{name: "img-decorative", tag: "img", attrs: jsx.Attrs{jsx.S("alt", "")}, want: "presentation"},
		{name: "input-default", tag: "input", want: "textbox"},
		{name: "input-checkbox", tag: "input", attrs: jsx.Attrs{jsx.S("type", "Checkbox")}, want: "checkbox"},
		{name: "input-submit", tag: "input", attrs: jsx.Attrs{jsx.S("type", "submit")}, want: "button"},
		{name: "input-range", tag: "input", attrs: jsx.Attrs{jsx.S("type", "range")}, want: "slider"},
		{name: "menu-toolbar", tag: "menu", attrs: jsx.Attrs{jsx.S("type", "toolbar")}, want: "toolbar"},
		{name: "menu", tag: "menu", want: "list"},
		{name: "menuitem-radio", tag: "menuitem", attrs: jsx.Attrs{jsx.S("type", "radio")}, want: "menuitemradio"},
		{name: "menuitem-bare", tag: "menuitem", want: ""},
		{name: "select", tag: "select", want: "combobox"},
		{name: "select-multiple", tag: "select", attrs: jsx.Attrs{jsx.Flag("multiple")}, want: "listbox"},
		{name: "select-size", tag: "select", attrs: jsx.Attrs{jsx.A("size", jsx.Num(4))}, want: "listbox"},
		{name: "nav", tag: "nav", want: "navigation"},
		{name: "div", tag: "div", want: ""},
		{name: "opaque", tag: Opaque, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ImplicitRole(tt.tag, tt.attrs))
		})
	}
}

func TestClassify(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name    string
		elem    *jsx.Element
		verdict Verdict
		reason  Reason
	}{
		{
			name:    "aria-hidden-wins-over-widget-role",
			elem:    jsx.E("div", jsx.Attrs{jsx.S("role", "button"), jsx.Flag("aria-hidden")}),
			verdict: Presentational,
			reason:  ReasonHidden,
		},
		{
			name:    "aria-hidden-on-button",
			elem:    jsx.E("button", jsx.Attrs{jsx.A("aria-hidden", jsx.Bool(true))}),
			verdict: Presentational,
			reason:  ReasonHidden,
		},
		{
			name:    "presentation-role",
			elem:    jsx.E("li", jsx.Attrs{jsx.S("role", "presentation")}),
			verdict: Presentational,
			reason:  ReasonPresentationRole,
		},
		{
			name:    "decorative-image",
			elem:    jsx.E("img", jsx.Attrs{jsx.S("alt", "")}),
			verdict: Presentational,
			reason:  ReasonPresentationRole,
		},
		{
			name:    "hidden-input",
			elem:    jsx.E("input", jsx.Attrs{jsx.S("type", "hidden")}),
			verdict: Presentational,
			reason:  ReasonHidden,
		},
		{
			name:    "widget-role-on-div",
			elem:    jsx.E("div", jsx.Attrs{jsx.S("role", "button")}),
			verdict: Interactive,
			reason:  ReasonWidgetRole,
		},
		{
			name:    "widget-role-on-component",
			elem:    jsx.E("Card", jsx.Attrs{jsx.S("role", "tab")}),
			verdict: Interactive,
			reason:  ReasonWidgetRole,
		},
		{
			name:    "button",
			elem:    jsx.E("button", nil),
			verdict: Interactive,
			reason:  ReasonInteractiveElement,
		},
		{
			name:    "mapped-component",
			elem:    jsx.E("Link", jsx.Attrs{jsx.S("href", "/")}),
			verdict: Interactive,
			reason:  ReasonInteractiveElement,
		},
		{
			name:    "anchor-without-href",
			elem:    jsx.E("a", nil),
			verdict: NonInteractive,
			reason:  ReasonStaticElement,
		},
		{
			name:    "anchor-with-spread",
			elem:    jsx.E("a", jsx.Attrs{jsx.Spread("props")}),
			verdict: Indeterminate,
			reason:  ReasonRoleUnknown,
		},
		{
			name:    "video-controls",
			elem:    jsx.E("video", jsx.Attrs{jsx.Flag("controls")}),
			verdict: Interactive,
			reason:  ReasonInteractiveElement,
		},
		{
			name:    "non-widget-role",
			elem:    jsx.E("div", jsx.Attrs{jsx.S("role", "article")}),
			verdict: NonInteractive,
			reason:  ReasonNonWidgetRole,
		},
		{
			name:    "implicit-role",
			elem:    jsx.E("h1", nil),
			verdict: NonInteractive,
			reason:  ReasonNonWidgetRole,
		},
		{
			name:    "invalid-role-falls-back-to-implicit",
			elem:    jsx.E("nav", jsx.Attrs{jsx.S("role", "navigaton")}),
			verdict: NonInteractive,
			reason:  ReasonNonWidgetRole,
		},
		{
			name:    "label",
			elem:    jsx.E("label", nil),
			verdict: NonInteractive,
			reason:  ReasonNonInteractiveElement,
		},
		{
			name:    "table-row",
			elem:    jsx.E("tr", nil),
			verdict: NonInteractive,
			reason:  ReasonNonInteractiveElement,
		},
		{
			name:    "div",
			elem:    jsx.E("div", nil),
			verdict: NonInteractive,
			reason:  ReasonStaticElement,
		},
		{
			name:    "role-expression",
			elem:    jsx.E("div", jsx.Attrs{jsx.A("role", jsx.Code("role"))}),
			verdict: Indeterminate,
			reason:  ReasonRoleUnknown,
		},
		{
			name:    "opaque",
			elem:    jsx.E("Card", nil),
			verdict: Indeterminate,
			reason:  ReasonOpaqueComponent,
		},
		{
			name:    "unknown-markup",
			elem:    jsx.E("my-widget", nil),
			verdict: Indeterminate,
			reason:  ReasonUnknownElement,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ClassifyElement(tt.elem)
			assert.Equal(t, tt.verdict, got.Verdict, "verdict")
			assert.Equal(t, tt.reason, got.Reason, "reason %s", got.Reason)
		})
	}
}

func TestClassifyFlagsDoNotChangeVerdict(t *testing.T) {
	r := testResolver(t)

	got := r.ClassifyElement(jsx.E("button", jsx.Attrs{jsx.Flag("disabled")}))
	assert.Equal(t, Interactive, got.Verdict)
	assert.Equal(t, jsx.Yes, got.Disabled)

	got = r.ClassifyElement(jsx.E("div", jsx.Attrs{jsx.S("aria-disabled", "true"), jsx.S("role", "button")}))
	assert.Equal(t, Interactive, got.Verdict)
	assert.Equal(t, jsx.Yes, got.Disabled)

	got = r.ClassifyElement(jsx.E("div", jsx.Attrs{jsx.S("contentEditable", "true")}))
	assert.Equal(t, NonInteractive, got.Verdict)
	assert.Equal(t, jsx.Yes, got.ContentEditable)

	got = r.ClassifyElement(jsx.E("button", jsx.Attrs{jsx.A("disabled", jsx.Bool(false))}))
	assert.Equal(t, jsx.No, got.Disabled)
}

func TestAriaHiddenAlwaysPresentational(t *testing.T) {
	r := testResolver(t)
	for _, tag := range []string{"div", "button", "a", "input", "Card", "Link", "nav", "my-widget"} {
		for _, role := range []string{"", "button", "navigation", "presentation", "bogus"} {
			attrs := jsx.Attrs{jsx.S("aria-hidden", "true")}
			if role != "" {
				attrs = append(attrs, jsx.S("role", role))
			}
			got := r.ClassifyElement(jsx.E(tag, attrs))
			assert.Equal(t, Presentational, got.Verdict, "%s role=%q", tag, role)
		}
	}
}

func TestWidgetRoleOnContainerIsInteractive(t *testing.T) {
	r := testResolver(t)
	for _, role := range []string{"button", "checkbox", "link", "menuitem", "option", "slider", "tab", "textbox", "switch"} {
		for _, tag := range []string{"div", "span", "section"} {
			got := r.ClassifyElement(jsx.E(tag, jsx.Attrs{jsx.S("role", role)}))
			assert.Equal(t, Interactive, got.Verdict, "%s role=%s", tag, role)
		}
	}
}

func TestEmojiOnlyContent(t *testing.T) {
	r := testResolver(t)

	btn := jsx.E("button", nil, jsx.T("🎉"))
	assert.False(t, r.HasAccessibleName(btn, NamePolicy{}))

	btn = jsx.E("button", nil, jsx.T(" 🎉 🎊 "))
	assert.False(t, r.HasAccessibleName(btn, NamePolicy{}))

	btn = jsx.E("button", jsx.Attrs{jsx.S("aria-label", "Celebrate")}, jsx.T("🎉"))
	assert.True(t, r.HasAccessibleName(btn, NamePolicy{}))

	btn = jsx.E("button", nil, jsx.T("🎉 Party"))
	assert.True(t, r.HasAccessibleName(btn, NamePolicy{}))
}

func TestAccessibleNameSources(t *testing.T) {
	r := MustNew(Config{
		LabelAttributes:   []string{"label"},
		ControlComponents: []string{"CustomInput"},
	})

	tests := []struct {
		name   string
		elem   *jsx.Element
		policy NamePolicy
		found  bool
		source NameSource
	}{
		{
			name:   "text",
			elem:   jsx.E("button", nil, jsx.T("Save")),
			found:  true,
			source: NameFromText,
		},
		{
			name:   "nested-text",
			elem:   jsx.E("button", nil, jsx.E("span", nil, jsx.T("Save"))),
			found:  true,
			source: NameFromText,
		},
		{
			name:   "literal-expression",
			elem:   jsx.E("button", nil, jsx.X(jsx.Str("Save"))),
			found:  true,
			source: NameFromText,
		},
		{
			name:   "aria-label",
			elem:   jsx.E("button", jsx.Attrs{jsx.S("aria-label", "Save")}),
			found:  true,
			source: NameFromLabelAttribute,
		},
		{
			name:   "configured-label-attribute",
			elem:   jsx.E("button", jsx.Attrs{jsx.S("label", "Save")}),
			found:  true,
			source: NameFromLabelAttribute,
		},
		{
			name:   "img-alt-in-child",
			elem:   jsx.E("a", jsx.Attrs{jsx.S("href", "/")}, jsx.E("img", jsx.Attrs{jsx.S("alt", "Home")})),
			found:  true,
			source: NameFromLabelAttribute,
		},
		{
			name:   "control-component",
			elem:   jsx.E("label", nil, jsx.E("CustomInput", nil)),
			found:  true,
			source: NameFromControlComponent,
		},
		{
			name:  "root-control-component-is-not-assumed",
			elem:  jsx.E("CustomInput", nil),
			found: false,
		},
		{
			name:  "expression-is-conservative",
			elem:  jsx.E("button", nil, jsx.X(jsx.Code("label"))),
			found: false,
		},
		{
			name:  "conditional-needs-policy",
			elem:  jsx.E("button", nil, jsx.X(jsx.Cond("open", jsx.Str("Close"), jsx.Str("Open")))),
			found: false,
		},
		{
			name:   "conditional-with-policy",
			elem:   jsx.E("button", nil, jsx.X(jsx.Cond("open", jsx.Str("Close"), jsx.Str("Open")))),
			policy: NamePolicy{AcceptConditionalLiterals: true},
			found:  true,
			source: NameFromConditional,
		},
		{
			name:   "conditional-with-empty-branch",
			elem:   jsx.E("button", nil, jsx.X(jsx.Cond("open", jsx.Str("Close"), jsx.Str("")))),
			policy: NamePolicy{AcceptConditionalLiterals: true},
			found:  false,
		},
		{
			name:  "expression-label",
			elem:  jsx.E("button", jsx.Attrs{jsx.A("aria-label", jsx.Code("t('save')"))}),
			found: false,
		},
		{
			name:   "expression-label-trusted",
			elem:   jsx.E("button", jsx.Attrs{jsx.A("aria-label", jsx.Code("t('save')"))}),
			policy: NamePolicy{TrustExpressionLabels: true},
			found:  true,
			source: NameFromExpressionLabel,
		},
		{
			name:  "hidden-child",
			elem:  jsx.E("button", nil, jsx.E("span", jsx.Attrs{jsx.Flag("aria-hidden")}, jsx.T("Save"))),
			found: false,
		},
		{
			name:  "blank",
			elem:  jsx.E("button", nil, jsx.T("  \n ")),
			found: false,
		},
		{
			name:   "markup-expression",
			elem:   jsx.E("button", nil, jsx.X(jsx.ElementValue(jsx.E("span", nil, jsx.T("Save"))))),
			found:  true,
			source: NameFromText,
		},
		{
			name:  "hidden-markup-expression",
			elem:  jsx.E("button", nil, jsx.X(jsx.ElementValue(jsx.E("span", jsx.Attrs{jsx.Flag("aria-hidden")}, jsx.T("Save"))))),
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.FindAccessibleName(tt.elem, tt.policy)
			assert.Equal(t, tt.found, got.Found)
			if tt.found {
				assert.Equal(t, tt.source, got.Source)
			}
		})
	}
}

func TestEmptyLabelsAreReported(t *testing.T) {
	r := testResolver(t)
	elem := jsx.E("button", jsx.Attrs{jsx.S("aria-label", ""), jsx.Flag("title")})
	got := r.FindAccessibleName(elem, NamePolicy{})
	assert.False(t, got.Found)
	require.Len(t, got.EmptyLabels, 2)
	assert.Equal(t, "aria-label", got.EmptyLabels[0].Name)
	assert.Equal(t, "title", got.EmptyLabels[1].Name)
}

func TestInconclusiveSearch(t *testing.T) {
	r := testResolver(t)
	got := r.FindAccessibleName(jsx.E("button", nil, jsx.X(jsx.Code("children"))), NamePolicy{})
	assert.False(t, got.Found)
	assert.True(t, got.Inconclusive())

	got = r.FindAccessibleName(jsx.E("button", nil), NamePolicy{})
	assert.False(t, got.Inconclusive())
}

func nested(levels int, leaf jsx.Node) *jsx.Element {
	cur := jsx.E("span", nil, leaf)
	for i := 1; i < levels; i++ {
		cur = jsx.E("span", nil, cur)
	}
	return jsx.E("button", nil, cur)
}

func TestDepthBudgetIsRespected(t *testing.T) {
	r := testResolver(t)

	deep := nested(30, jsx.T("Save"))
	got := r.FindAccessibleName(deep, NamePolicy{})
	assert.False(t, got.Found)
	assert.Equal(t, 2, got.Deepest)
	assert.Equal(t, 3, got.Visited)

	got = r.FindAccessibleName(deep, NamePolicy{Depth: 1000})
	assert.False(t, got.Found, "budget is capped")
	assert.Equal(t, MaxSearchDepth, got.Deepest)
}

func TestNameSearchIsMonotoneInDepth(t *testing.T) {
	r := testResolver(t)
	trees := []*jsx.Element{
		nested(1, jsx.T("a")),
		nested(3, jsx.T("a")),
		nested(5, jsx.E("img", jsx.Attrs{jsx.S("alt", "x")})),
		nested(8, jsx.T("🎉")),
		jsx.E("div", nil, jsx.E("p", nil), jsx.E("p", nil, jsx.E("b", nil, jsx.T("x")))),
	}
	for i, tree := range trees {
		prev := false
		for depth := 1; depth <= 12; depth++ {
			got := r.HasAccessibleName(tree, NamePolicy{Depth: depth})
			if prev {
				assert.True(t, got, "tree %d lost its name at depth %d", i, depth)
			}
			prev = got
		}
	}
}

func TestHasAccessibleContent(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name string
		elem *jsx.Element
		want jsx.Tri
	}{
		{name: "text", elem: jsx.E("a", nil, jsx.T("x")), want: jsx.Yes},
		{name: "empty", elem: jsx.E("a", nil), want: jsx.No},
		{name: "blank", elem: jsx.E("a", nil, jsx.T(" ")), want: jsx.No},
		{name: "child", elem: jsx.E("a", nil, jsx.E("Icon", nil)), want: jsx.Yes},
		{name: "hidden-child", elem: jsx.E("a", nil, jsx.E("span", jsx.Attrs{jsx.Flag("aria-hidden")})), want: jsx.No},
		{name: "expression", elem: jsx.E("a", nil, jsx.X(jsx.Code("x"))), want: jsx.Unknown},
		{name: "undefined", elem: jsx.E("a", nil, jsx.X(jsx.Undefined())), want: jsx.No},
		{name: "children-attr", elem: jsx.E("a", jsx.Attrs{jsx.A("children", jsx.Code("x"))}), want: jsx.Yes},
		{name: "spread", elem: jsx.E("a", jsx.Attrs{jsx.Spread("props")}), want: jsx.Unknown},
		{name: "markup-expression", elem: jsx.E("a", nil, jsx.X(jsx.ElementValue(jsx.E("span", nil)))), want: jsx.Yes},
		{
			name: "hidden-markup-expression",
			elem: jsx.E("a", nil, jsx.X(jsx.ElementValue(jsx.E("span", jsx.Attrs{jsx.Flag("aria-hidden")})))),
			want: jsx.No,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.HasAccessibleContent(tt.elem))
		})
	}
}

func TestContainsComponent(t *testing.T) {
	r := testResolver(t)
	label := jsx.E("label", nil, jsx.E("div", nil, jsx.E("CustomInput", nil)))
	assert.False(t, r.ContainsComponent(label, []string{"CustomInput"}, 1))
	assert.True(t, r.ContainsComponent(label, []string{"CustomInput"}, 2))
	assert.True(t, r.ContainsComponent(label, []string{"Custom*"}, 2))

	withInput := jsx.E("label", nil, jsx.E("input", nil))
	assert.True(t, r.ContainsComponent(withInput, []string{"input"}, 1))
	assert.False(t, r.ContainsComponent(withInput, nil, 5))

	inExpression := jsx.E("label", nil, jsx.T("Name"), jsx.X(jsx.ElementValue(jsx.E("input", nil))))
	assert.True(t, r.ContainsComponent(inExpression, []string{"input"}, 1))
}

func TestControlComponentsMatchRenderedTag(t *testing.T) {
	r, err := New(Config{
		ComponentTags:     map[string]string{"TextField": "input"},
		ControlComponents: []string{"input"},
	})
	require.NoError(t, err)

	got := r.FindAccessibleName(jsx.E("label", nil, jsx.E("TextField", nil)), NamePolicy{})
	assert.True(t, got.Found)
	assert.Equal(t, NameFromControlComponent, got.Source)

	got = r.FindAccessibleName(jsx.E("label", nil, jsx.E("input", nil)), NamePolicy{})
	assert.True(t, got.Found)
	assert.Equal(t, NameFromControlComponent, got.Source)

	got = r.FindAccessibleName(jsx.E("label", nil, jsx.E("Unknown", nil)), NamePolicy{})
	assert.False(t, got.Found)
}

func TestFocus(t *testing.T) {
	idx, known := TabIndex(jsx.Attrs{jsx.S("tabIndex", "-1")})
	assert.Equal(t, jsx.Yes, known)
	assert.Equal(t, -1, idx)

	_, known = TabIndex(jsx.Attrs{jsx.S("tabIndex", "abc")})
	assert.Equal(t, jsx.No, known)

	_, known = TabIndex(jsx.Attrs{jsx.A("tabIndex", jsx.Code("idx"))})
	assert.Equal(t, jsx.Unknown, known)

	assert.Equal(t, jsx.Yes, IsFocusable("div", jsx.Attrs{jsx.A("tabIndex", jsx.Num(0))}))
	assert.Equal(t, jsx.No, IsFocusable("div", jsx.Attrs{jsx.A("tabIndex", jsx.Num(-1))}))
	assert.Equal(t, jsx.Yes, IsFocusable("button", nil))
	assert.Equal(t, jsx.No, IsFocusable("a", nil))
	assert.Equal(t, jsx.Unknown, IsFocusable(Opaque, nil))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"button"}, SuggestRoles("buton"))
	assert.Empty(t, SuggestRoles("zzzzzzzz"))

	got := Suggest("aria-lable", []string{"aria-level", "aria-label", "aria-hidden"})
	assert.Equal(t, []string{"aria-label"}, got)

	got = Suggest("tabe", []string{"tab", "tabs", "table"})
	assert.Equal(t, []string{"tab", "tabs"}, got, "limited to two, vocabulary order among equals")

	got = Suggest("TABL", []string{"tablet", "tab"})
	assert.Equal(t, []string{"tab", "tablet"}, got, "closest first")
}
