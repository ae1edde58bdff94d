package operator

import (
	"math"
	"reflect"
	"strings"

	"json-mapper/internal/value"
)

const ellipsis = "..."

// asString returns v when it is a string of any named string type.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}

	if value.IsNil(v) {
		return "", false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}

// strMaxLenLimit truncates the selected string to maxLen characters and
// appends "...". A negative maxLen counts from the end; a non-numeric maxLen
// leaves the string unchanged. Non-strings yield "".
func strMaxLenLimit(_ *Library, p Params, source any) any {
	s, ok := asString(lookup(source, p.Path("select")))
	if !ok {
		return ""
	}

	limit := math.NaN()
	if raw, ok := p.Get("maxLen"); ok {
		limit = value.ToNumber(raw)
	}

	runes := []rune(s)
	if math.IsNaN(limit) || !(float64(len(runes)) > limit) {
		return s
	}

	end := 0
	if !math.IsInf(limit, -1) {
		end = int(math.Trunc(limit))
	}

	if end < 0 {
		end = max(len(runes)+end, 0)
	}

	return string(runes[:end]) + ellipsis
}

// str2Num coerces the selected value to a number. Results of 0 or NaN fall
// back to defaultValue, itself 0 when falsy.
func str2Num(_ *Library, p Params, source any) any {
	fallback := p.Or("defaultValue", 0.0)

	if !value.Truthy(p.Value("select")) {
		return fallback
	}

	n := value.ToNumber(lookup(source, p.Path("select")))
	if !value.Truthy(n) {
		return fallback
	}

	return n
}

// splitStr2Arr splits the selected string by separator and returns the
// element at selectIndex, numeric-coerced when itemType is "number". Falsy
// selections and falsy or missing elements fall back to defaultValue.
func splitStr2Arr(_ *Library, p Params, source any) any {
	fallback := p.Or("defaultValue", 0.0)

	selected := lookup(source, p.Path("select"))
	if !value.Truthy(selected) {
		return fallback
	}

	s, ok := asString(selected)
	if !ok {
		return fallback
	}

	parts := []string{s}
	if sep, ok := p.Get("separator"); ok && !value.IsNullish(sep) {
		parts = strings.Split(s, value.ToString(sep))
	}

	idx := value.ToNumber(p.Or("selectIndex", 0))
	if idx != math.Trunc(idx) || idx < 0 || idx >= float64(len(parts)) {
		return fallback
	}

	var item any = parts[int(idx)]
	if p.String("itemType") == "number" {
		item = value.ToNumber(item)
	}

	if !value.Truthy(item) {
		return fallback
	}

	return item
}

// strReplace replaces the first occurrence of substr in the selected string.
// It yields "" when the selection is not a string or when substr or
// replacement is falsy.
func strReplace(_ *Library, p Params, source any) any {
	s, ok := asString(lookup(source, p.Path("select")))
	substr, replacement := p.Value("substr"), p.Value("replacement")

	if !ok || !value.Truthy(substr) || !value.Truthy(replacement) {
		return ""
	}

	return replaceFirst(s, value.ToString(substr), value.ToString(replacement))
}

// replaceFirst replaces the first occurrence of old in s. The replacement may
// use $$ (a literal $), $& (the match), $` (text before the match) and $'
// (text after the match).
func replaceFirst(s, old, replacement string) string {
	at := strings.Index(s, old)
	if at < 0 {
		return s
	}

	before, after := s[:at], s[at+len(old):]

	var b strings.Builder

	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c != '$' || i+1 == len(replacement) {
			b.WriteByte(c)
			continue
		}

		switch replacement[i+1] {
		case '$':
			b.WriteByte('$')
		case '&':
			b.WriteString(old)
		case '`':
			b.WriteString(before)
		case '\'':
			b.WriteString(after)
		default:
			b.WriteByte(c)
			continue
		}

		i++
	}

	return before + b.String() + after
}
