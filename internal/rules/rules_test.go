package rules

import (
	"testing"
)

func TestRuleTable(t *testing.T) {
	all := All()
	if len(all) != len(ruleTable) {
		t.Fatalf("rule table has %d entries, enumeration has %d", len(ruleTable), len(all))
	}

	slugs := map[string]Rule{}
	codes := map[string]Rule{}
	for _, r := range all {
		if _, ok := ruleTable[r]; !ok {
			t.Fatalf("rule %d has no table entry", r)
		}
		if prev, ok := slugs[r.Slug()]; ok {
			t.Errorf("slug %q shared by %s and %s", r.Slug(), prev, r)
		}
		slugs[r.Slug()] = r
		if prev, ok := codes[r.Code()]; ok {
			t.Errorf("code %s shared by %s and %s", r.Code(), prev, r)
		}
		codes[r.Code()] = r

		got, ok := BySlug(r.Slug())
		if !ok || got != r {
			t.Errorf("BySlug(%q) = %s, %v", r.Slug(), got, ok)
		}
		got, ok = BySlug(r.Code())
		if !ok || got != r {
			t.Errorf("BySlug(%q) = %s, %v", r.Code(), got, ok)
		}
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{AF010AltText, "AF010: AltText"},
		{AF195TabindexNoPositive, "AF195: TabindexNoPositive"},
		{ruleInvalid, "rule-unknown(0)"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaultLevel(t *testing.T) {
	if l := AF000AccessibleEmoji.DefaultLevel(); l != LevelOff {
		t.Errorf("deprecated rule level = %s", l)
	}
	if l := AF115AriaRole.DefaultLevel(); l != LevelError {
		t.Errorf("aria-role level = %s", l)
	}
	if l := AF900ParseProblem.DefaultLevel(); l != LevelWarn {
		t.Errorf("parse-problem level = %s", l)
	}
}

func TestLevelText(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"0", LevelOff, false},
		{"warn", LevelWarn, false},
		{"1", LevelWarn, false},
		{"error", LevelError, false},
		{"2", LevelError, false},
		{"fatal", LevelOff, true},
	}
	for _, tt := range tests {
		var l Level
		err := l.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Fatalf("UnmarshalText(%q) error = %v", tt.in, err)
		}
		if err == nil && l != tt.want {
			t.Errorf("UnmarshalText(%q) = %s, want %s", tt.in, l, tt.want)
		}
	}

	if s := Level(7).String(); s != "level-invalid(7)" {
		t.Errorf("invalid level string = %q", s)
	}
}
