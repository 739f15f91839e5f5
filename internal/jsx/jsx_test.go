package jsx

import (
	"slices"
	"testing"
)

func TestValueIsTrue(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  Tri
	}{
		{name: "implicit", value: Implicit(), want: Yes},
		{name: "bool-true", value: Bool(true), want: Yes},
		{name: "bool-false", value: Bool(false), want: No},
		{name: "string-true", value: Str("TRUE"), want: Yes},
		{name: "string-other", value: Str("yes"), want: No},
		{name: "null", value: Null(), want: No},
		{name: "expr", value: Code("hidden"), want: Unknown},
		{name: "cond-agree", value: Cond("x", Bool(true), Str("true")), want: Yes},
		{name: "cond-disagree", value: Cond("x", Bool(true), Bool(false)), want: Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.IsTrue(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValueText(t *testing.T) {
	if s, ok := Implicit().Text(); !ok || s != "true" {
		t.Errorf("implicit value must read as true, got %q %v", s, ok)
	}
	if s, ok := Num(-1).Text(); !ok || s != "-1" {
		t.Errorf("unexpected number text %q", s)
	}
	if _, ok := Undefined().Text(); ok {
		t.Error("undefined must have no text")
	}
	if _, ok := Code("x").Text(); ok {
		t.Error("expression must have no text")
	}
}

func TestAttrsLookup(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		look  string
		want  Presence
		value string
	}{
		{
			name:  "case-insensitive",
			attrs: Attrs{Spread("props"), S("aria-Label", "x")},
			look:  "ARIA-LABEL",
			want:  Present,
			value: "x",
		},
		{
			name:  "spread-without-attribute",
			attrs: Attrs{S("aria-label", "x"), Spread("props")},
			look:  "role",
			want:  Possible,
		},
		{
			name:  "absent",
			attrs: Attrs{S("id", "a")},
			look:  "role",
			want:  Absent,
		},
		{
			name:  "spread-overrides-attribute",
			attrs: Attrs{S("role", "button"), Spread("props")},
			look:  "role",
			want:  Possible,
			value: "button",
		},
		{
			name:  "attribute-overrides-spread",
			attrs: Attrs{Spread("props"), S("role", "button")},
			look:  "role",
			want:  Present,
			value: "button",
		},
		{
			name:  "last-duplicate-wins",
			attrs: Attrs{S("role", "button"), S("role", "link")},
			look:  "role",
			want:  Present,
			value: "link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, p := tt.attrs.Lookup(tt.look)
			if p != tt.want {
				t.Errorf("presence: got %s, want %s", p, tt.want)
			}
			if tt.value == "" {
				return
			}
			if a == nil {
				t.Fatal("written attribute must be returned")
			}
			if text, _ := a.Value.Text(); text != tt.value {
				t.Errorf("value: got %q, want %q", text, tt.value)
			}
		})
	}
}

func TestAttrsFlags(t *testing.T) {
	attrs := Attrs{S("aria-label", "x"), Spread("props"), Flag("disabled")}

	if got := attrs.IsTrue("disabled"); got != Yes {
		t.Errorf("valueless disabled must be true, got %s", got)
	}
	if got := attrs.IsTrue("aria-hidden"); got != Unknown {
		t.Errorf("spread must make aria-hidden unknown, got %s", got)
	}
	if got := attrs.Rendered("aria-label"); got != Unknown {
		t.Errorf("a spread after aria-label may drop it, got %s", got)
	}
	if !attrs.Has("aria-label") {
		t.Error("aria-label is written out")
	}
	if got := (Attrs{A("alt", Undefined())}).Rendered("alt"); got != No {
		t.Errorf("undefined alt is not rendered, got %s", got)
	}
}

func TestFileElements(t *testing.T) {
	leaf := E("span", nil, T("x"))
	inner := E("li", nil, leaf)
	root := E("ul", nil, inner, E("li", nil))
	detached := E("b", nil)
	detached.Parent = root

	f := &File{Roots: []*Element{root, detached}}
	var names []string
	for e := range f.Elements() {
		names = append(names, e.Name)
	}
	want := []string{"ul", "li", "span", "li", "b"}
	if !slices.Equal(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}

	var chain []string
	leaf.Ancestors(func(e *Element) bool {
		chain = append(chain, e.Name)
		return true
	})
	if !slices.Equal(chain, []string{"li", "ul"}) {
		t.Errorf("unexpected ancestors %v", chain)
	}
}

func TestIsComponentName(t *testing.T) {
	for name, want := range map[string]bool{
		"div":       false,
		"Button":    true,
		"UI.button": true,
		"svg:rect":  false,
		"":          false,
	} {
		if got := IsComponentName(name); got != want {
			t.Errorf("%q: got %v, want %v", name, got, want)
		}
	}
}
