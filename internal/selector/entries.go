package selector

import (
	"reflect"

	"json-mapper/internal/value"
)

// Entries returns the key/value pairs of an object: maps with string keys, or
// structs (exported fields, keyed by json tag or field name). ok is false for
// anything else.
func Entries(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	if value.IsNil(v) {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}

		return out, true
	case reflect.Struct:
		out := make(map[string]any)

		for _, f := range reflect.VisibleFields(rv.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}

			name := jsonName(f)
			if name == "-" {
				continue
			}

			if name == "" {
				name = f.Name
			}

			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil {
				continue
			}

			out[name] = fv.Interface()
		}

		return out, true
	default:
		return nil, false
	}
}
