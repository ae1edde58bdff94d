package selector

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"json-mapper/internal/match"
	"json-mapper/internal/value"
)

// Resolve walks path through source. The boolean is false when any segment is
// missing.
func Resolve(source any, path string) (any, bool) {
	segments := []string{path}
	if isDeepPath(path) {
		if _, ok := Key(source, path); !ok {
			segments = ParsePath(path)
		}
	}

	current := source

	for _, segment := range segments {
		next, ok := Key(current, segment)
		if !ok {
			return nil, false
		}

		current, ok = invoke(next)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Key looks up a single literal key on v without invoking the result.
func Key(v any, key string) (any, bool) {
	if value.IsNil(v) {
		return nil, false
	}

	if m, ok := v.(map[string]any); ok {
		found, ok := m[key]
		return found, ok
	}

	rv := reflect.ValueOf(v)

	if method, ok := methodByName(rv, key); ok {
		return method.Interface(), true
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return mapKey(rv, key)
	case reflect.Struct:
		return structField(rv, key)
	case reflect.Slice, reflect.Array:
		if key == "length" {
			return rv.Len(), true
		}

		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}

		return rv.Index(i).Interface(), true
	case reflect.String:
		s := rv.String()
		if key == "length" {
			return utf8.RuneCountInString(s), true
		}

		runes := []rune(s)

		i, ok := index(key, len(runes))
		if !ok {
			return nil, false
		}

		return string(runes[i]), true
	default:
		return nil, false
	}
}

// invoke calls v when it is a function taking no arguments and returns its
// first result. A trailing non-nil error result makes the value missing.
func invoke(v any) (any, bool) {
	if v == nil {
		return nil, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return v, true
	}

	ft := rv.Type()
	if ft.NumIn() != 0 || ft.NumOut() == 0 {
		return v, true
	}

	out := rv.Call(nil)
	if last := out[len(out)-1]; len(out) > 1 && last.Type().Implements(errorType) && !last.IsNil() {
		return nil, false
	}

	return out[0].Interface(), true
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func methodByName(rv reflect.Value, name string) (reflect.Value, bool) {
	if name == "" || !rv.IsValid() {
		return reflect.Value{}, false
	}

	for _, candidate := range []string{name, exportedName(name)} {
		m := rv.MethodByName(candidate)
		if m.IsValid() {
			return m, true
		}
	}

	return reflect.Value{}, false
}

func mapKey(rv reflect.Value, key string) (any, bool) {
	kt := rv.Type().Key()
	if kt.Kind() != reflect.String {
		return nil, false
	}

	found := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
	if !found.IsValid() {
		return nil, false
	}

	return found.Interface(), true
}

func structField(rv reflect.Value, key string) (any, bool) {
	fields := reflect.VisibleFields(rv.Type())

	find := func(pred func(f reflect.StructField) bool) (any, bool) {
		for _, f := range fields {
			if !f.IsExported() || f.Anonymous || !pred(f) {
				continue
			}

			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil {
				return nil, false
			}

			return fv.Interface(), true
		}

		return nil, false
	}

	if v, ok := find(func(f reflect.StructField) bool { return jsonName(f) == key }); ok {
		return v, true
	}

	if v, ok := find(func(f reflect.StructField) bool { return f.Name == key }); ok {
		return v, true
	}

	normalized := match.NormalizeIdent(key)

	return find(func(f reflect.StructField) bool { return match.NormalizeIdent(f.Name) == normalized })
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}

func index(key string, length int) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}

	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}

	return i, true
}

func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return strings.ToUpper(string(r)) + name[size:]
}
