package taxonomy

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// AttrType is the value type of an ARIA state or property.
type AttrType int

const (
	attrTypeInvalid AttrType = iota
	AttrBoolean
	AttrString
	AttrID
	AttrIDList
	AttrInteger
	AttrNumber
	AttrToken
	AttrTokenList
	AttrTristate
)

var attrTypeNames = map[AttrType]string{
	AttrBoolean:   "boolean",
	AttrString:    "string",
	AttrID:        "id",
	AttrIDList:    "idlist",
	AttrInteger:   "integer",
	AttrNumber:    "number",
	AttrToken:     "token",
	AttrTokenList: "tokenlist",
	AttrTristate:  "tristate",
}

func (t AttrType) String() string {
	v, ok := attrTypeNames[t]
	if !ok {
		return fmt.Sprintf("attr-type-invalid(%d)", t)
	}
	return v
}

// AriaAttr describes an aria-* attribute.
type AriaAttr struct {
	Name string
	Type AttrType

	// Values lists permitted tokens for token and tokenlist types.
	Values []string

	// AllowUndefined permits the literal undefined as a value.
	AllowUndefined bool
}

var globalProps = strings.Fields(`
	aria-atomic aria-braillelabel aria-brailleroledescription aria-busy aria-controls
	aria-current aria-describedby aria-description aria-details aria-disabled aria-dropeffect
	aria-errormessage aria-flowto aria-grabbed aria-haspopup aria-hidden aria-invalid
	aria-keyshortcuts aria-label aria-labelledby aria-live aria-owns aria-relevant
	aria-roledescription
`)

var ariaAttrs = map[string]AriaAttr{}

func init() {
	for _, a := range []AriaAttr{
		{Name: "aria-activedescendant", Type: AttrID},
		{Name: "aria-atomic", Type: AttrBoolean},
		{Name: "aria-autocomplete", Type: AttrToken, Values: []string{"inline", "list", "both", "none"}},
		{Name: "aria-braillelabel", Type: AttrString},
		{Name: "aria-brailleroledescription", Type: AttrString},
		{Name: "aria-busy", Type: AttrBoolean},
		{Name: "aria-checked", Type: AttrTristate},
		{Name: "aria-colcount", Type: AttrInteger},
		{Name: "aria-colindex", Type: AttrInteger},
		{Name: "aria-colindextext", Type: AttrString},
		{Name: "aria-colspan", Type: AttrInteger},
		{Name: "aria-controls", Type: AttrIDList},
		{Name: "aria-current", Type: AttrToken, Values: []string{"page", "step", "location", "date", "time", "true", "false"}},
		{Name: "aria-describedby", Type: AttrIDList},
		{Name: "aria-description", Type: AttrString},
		{Name: "aria-details", Type: AttrID},
		{Name: "aria-disabled", Type: AttrBoolean},
		{Name: "aria-dropeffect", Type: AttrTokenList, Values: []string{"copy", "execute", "link", "move", "none", "popup"}},
		{Name: "aria-errormessage", Type: AttrID},
		{Name: "aria-expanded", Type: AttrBoolean, AllowUndefined: true},
		{Name: "aria-flowto", Type: AttrIDList},
		{Name: "aria-grabbed", Type: AttrBoolean, AllowUndefined: true},
		{Name: "aria-haspopup", Type: AttrToken, Values: []string{"false", "true", "menu", "listbox", "tree", "grid", "dialog"}},
		{Name: "aria-hidden", Type: AttrBoolean, AllowUndefined: true},
		{Name: "aria-invalid", Type: AttrToken, Values: []string{"grammar", "false", "spelling", "true"}},
		{Name: "aria-keyshortcuts", Type: AttrString},
		{Name: "aria-label", Type: AttrString},
		{Name: "aria-labelledby", Type: AttrIDList},
		{Name: "aria-level", Type: AttrInteger},
		{Name: "aria-live", Type: AttrToken, Values: []string{"assertive", "off", "polite"}},
		{Name: "aria-modal", Type: AttrBoolean},
		{Name: "aria-multiline", Type: AttrBoolean},
		{Name: "aria-multiselectable", Type: AttrBoolean},
		{Name: "aria-orientation", Type: AttrToken, Values: []string{"vertical", "undefined", "horizontal"}},
		{Name: "aria-owns", Type: AttrIDList},
		{Name: "aria-placeholder", Type: AttrString},
		{Name: "aria-posinset", Type: AttrInteger},
		{Name: "aria-pressed", Type: AttrTristate},
		{Name: "aria-readonly", Type: AttrBoolean},
		{Name: "aria-relevant", Type: AttrTokenList, Values: []string{"additions", "all", "removals", "text"}},
		{Name: "aria-required", Type: AttrBoolean},
		{Name: "aria-roledescription", Type: AttrString},
		{Name: "aria-rowcount", Type: AttrInteger},
		{Name: "aria-rowindex", Type: AttrInteger},
		{Name: "aria-rowindextext", Type: AttrString},
		{Name: "aria-rowspan", Type: AttrInteger},
		{Name: "aria-selected", Type: AttrBoolean, AllowUndefined: true},
		{Name: "aria-setsize", Type: AttrInteger},
		{Name: "aria-sort", Type: AttrToken, Values: []string{"ascending", "descending", "none", "other"}},
		{Name: "aria-valuemax", Type: AttrNumber},
		{Name: "aria-valuemin", Type: AttrNumber},
		{Name: "aria-valuenow", Type: AttrNumber},
		{Name: "aria-valuetext", Type: AttrString},
	} {
		ariaAttrs[a.Name] = a
	}
}

// LookupAria returns the description of an aria-* attribute, the name is case-insensitive.
func LookupAria(name string) (AriaAttr, bool) {
	a, ok := ariaAttrs[strings.ToLower(name)]
	return a, ok
}

// AriaAttrNames returns every known aria-* attribute name, sorted.
func AriaAttrNames() []string {
	return slices.Sorted(maps.Keys(ariaAttrs))
}

// AriaValue is a literal attribute value as the checker sees it: either a boolean or a string.
// Numbers are passed in their string form.
type AriaValue struct {
	IsBool bool
	Bool   bool
	Str    string
}

// Valid tells if the literal value fits the attribute type.
func (a AriaAttr) Valid(v AriaValue) bool {
	switch a.Type {
	case AttrBoolean:
		return v.IsBool
	case AttrString, AttrID:
		return !v.IsBool
	case AttrTristate:
		return v.IsBool || v.Str == "mixed"
	case AttrInteger, AttrNumber:
		if v.IsBool {
			return false
		}
		return isNumeric(v.Str)
	case AttrToken:
		tok := strconv.FormatBool(v.Bool)
		if !v.IsBool {
			tok = strings.ToLower(v.Str)
		}
		return slices.Contains(a.Values, tok)
	case AttrIDList:
		return !v.IsBool
	case AttrTokenList:
		if v.IsBool {
			return false
		}
		for _, tok := range strings.Split(v.Str, " ") {
			if !slices.Contains(a.Values, strings.ToLower(tok)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// isNumeric follows how Number() treats strings: surrounding blanks are ignored, a blank
// string is zero.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case math.IsNaN(f):
			return false
		case math.IsInf(f, 0):
			return strings.TrimLeft(s, "+-") == "Infinity"
		}
		return !strings.ContainsAny(s, "_")
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		_, err := strconv.ParseInt(s, 0, 64)
		return err == nil && !strings.ContainsAny(s, "_")
	}
	return false
}
