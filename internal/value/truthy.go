package value

import (
	"math"
	"reflect"
)

// Truthy reports whether v counts as true in a boolean context.
func Truthy(v any) bool {
	switch classOf(v) {
	case classUndefined, classNull:
		return false
	case classBool:
		return reflect.ValueOf(v).Bool()
	case classNumber:
		n, _ := AsNumber(v)
		return n != 0 && !math.IsNaN(n)
	case classString:
		return reflect.ValueOf(v).String() != ""
	default:
		return true
	}
}

// IsEmpty reports whether v is an empty collection.
//
// Strings, slices, arrays and maps are empty when they have no elements.
// Structs are empty when they have no exported fields. Every other value,
// numbers and booleans included, is empty.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		if isTime(rv) {
			return true
		}

		for i := range rv.NumField() {
			if rv.Type().Field(i).IsExported() {
				return false
			}
		}

		return true
	default:
		return true
	}
}
