package gen

import (
	"path/filepath"
	"strings"
)

// goKeywords also reserves the identifiers the generated methods bind
// themselves: the receiver m and the payload parameter data.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
	"data": {}, "m": {},
}

// goName converts a DBC identifier to an exported Go name. Parts are
// split on any non-alphanumeric run. A part without lowercase letters
// is treated as a plain word (ALIGNED_LE becomes AlignedLe); a part
// with mixed case keeps its interior casing (SixtyFourBit stays
// SixtyFourBit).
func goName(name string) string {
	var b strings.Builder
	for _, part := range splitParts(name) {
		if !strings.ContainsAny(part, "abcdefghijklmnopqrstuvwxyz") {
			part = strings.ToLower(part)
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	s := b.String()
	if s == "" {
		return s
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "X" + s
	}
	return s
}

func splitParts(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !isAlnum(r)
	})
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// tempName derives the working-variable name for a signal from its
// field name, avoiding keywords and names already taken in the method.
func tempName(fieldName string, taken map[string]struct{}) string {
	t := strings.ToLower(fieldName[:1]) + fieldName[1:]
	if _, reserved := goKeywords[t]; reserved {
		t += "Raw"
	}
	for {
		if _, used := taken[t]; !used {
			break
		}
		t += "Raw"
	}
	taken[t] = struct{}{}
	return t
}

// constPart sanitizes a value description for use in a constant name:
// uppercased, with every non-alphanumeric run collapsed to a single
// underscore. Returns "" when nothing survives.
func constPart(desc string) string {
	parts := splitParts(desc)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p)
	}
	return strings.Join(parts, "_")
}

// packageName derives a Go package name from a DBC file path:
// testdata/testbus.dbc becomes testbus.
func packageName(dbcPath string) string {
	base := filepath.Base(dbcPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		s = "dbc" + s
	}
	return s
}
