package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleGraphClosure(t *testing.T) {
	require.True(t, IsValidRole("button"))
	require.False(t, IsValidRole("widget"))
	require.True(t, IsAbstractRole("widget"))

	assert.True(t, Descends("menuitemradio", "widget"))
	assert.True(t, Descends("menuitemradio", "checkbox"))
	assert.True(t, Descends("treegrid", "section"))
	assert.False(t, Descends("heading", "widget"))
	assert.False(t, Descends("progressbar", "widget"))
	assert.False(t, Descends("toolbar", "widget"))

	assert.True(t, IsWidgetRole("row"))
	assert.False(t, IsWidgetRole("composite"), "abstract roles are never widget roles")
}

func TestAllAbstractRolesAreKnown(t *testing.T) {
	for _, name := range []string{
		"command", "composite", "input", "landmark", "range", "roletype",
		"section", "sectionhead", "select", "structure", "widget", "window",
	} {
		assert.True(t, IsAbstractRole(name), name)
	}
	for _, name := range ConcreteRoles() {
		assert.False(t, IsAbstractRole(name), name)
	}
}

func TestRoleSupportsProp(t *testing.T) {
	assert.True(t, RoleSupportsProp("button", "aria-pressed"))
	assert.True(t, RoleSupportsProp("button", "aria-label"), "global props are always supported")
	assert.True(t, RoleSupportsProp("slider", "aria-valuenow"), "inherited from range")
	assert.False(t, RoleSupportsProp("link", "aria-checked"))
	assert.False(t, RoleSupportsProp("no-such-role", "aria-label"))
}

func TestAriaValidity(t *testing.T) {
	hidden, ok := LookupAria("ARIA-HIDDEN")
	require.True(t, ok)

	tests := []struct {
		name  string
		attr  string
		value AriaValue
		want  bool
	}{
		{name: "boolean", attr: "aria-hidden", value: AriaValue{IsBool: true, Bool: true}, want: true},
		{name: "boolean-string", attr: "aria-hidden", value: AriaValue{Str: "yes"}, want: false},
		{name: "tristate-mixed", attr: "aria-checked", value: AriaValue{Str: "mixed"}, want: true},
		{name: "integer", attr: "aria-level", value: AriaValue{Str: "2"}, want: true},
		{name: "integer-bool", attr: "aria-level", value: AriaValue{IsBool: true}, want: false},
		{name: "number-garbage", attr: "aria-valuenow", value: AriaValue{Str: "abc"}, want: false},
		{name: "token", attr: "aria-live", value: AriaValue{Str: "Polite"}, want: true},
		{name: "token-bool", attr: "aria-haspopup", value: AriaValue{IsBool: true, Bool: true}, want: true},
		{name: "token-invalid", attr: "aria-sort", value: AriaValue{Str: "up"}, want: false},
		{name: "tokenlist", attr: "aria-relevant", value: AriaValue{Str: "additions text"}, want: true},
		{name: "tokenlist-invalid", attr: "aria-relevant", value: AriaValue{Str: "additions foo"}, want: false},
		{name: "idlist", attr: "aria-labelledby", value: AriaValue{Str: "a b"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := LookupAria(tt.attr)
			require.True(t, ok)
			assert.Equal(t, tt.want, a.Valid(tt.value))
		})
	}
	assert.True(t, hidden.AllowUndefined)
}

func TestElementDefaults(t *testing.T) {
	a, ok := ElementDefaults("a")
	require.True(t, ok)
	assert.Equal(t, CategoryStatic, a.Category)
	assert.Equal(t, "href", a.InteractiveWith)

	btn, _ := ElementDefaults("button")
	assert.Equal(t, CategoryInteractive, btn.Category)
	assert.Equal(t, "button", btn.Role)

	img, _ := ElementDefaults("img")
	assert.True(t, img.Void)

	assert.True(t, IsReserved("meta"))
	assert.False(t, IsDOM("Button"))
	assert.False(t, IsDOM("svg"))

	for name, e := range elements {
		if e.Role != "" {
			assert.True(t, IsValidRole(e.Role), "%s has unknown implicit role %s", name, e.Role)
		}
	}
}

func TestRoleElements(t *testing.T) {
	refs := RoleElements("heading")
	require.Len(t, refs, 6)
	assert.Equal(t, "<h1>", refs[0].String())

	link := RoleElements("link")
	assert.Equal(t, []string{"<a href=...>", "<area href=...>"}, []string{link[0].String(), link[1].String()})

	assert.Empty(t, RoleElements("presentation"))
}

func TestHandlers(t *testing.T) {
	got := Handlers(HandlersFocus, HandlersKeyboard)
	assert.Equal(t, []string{"onFocus", "onBlur", "onKeyDown", "onKeyPress", "onKeyUp"}, got)
}
