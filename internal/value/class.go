package value

import (
	"reflect"
	"time"
)

type undefined struct{}

// Undefined marks an absent value. It never appears in evaluation output.
var Undefined any = undefined{}

// class is the dynamic type of a value as seen by the coercion rules.
type class int

const (
	classUndefined class = iota
	classNull
	classBool
	classNumber
	classString
	classObject
)

func classOf(v any) class {
	switch v.(type) {
	case undefined:
		return classUndefined
	case nil:
		return classNull
	case bool:
		return classBool
	case string:
		return classString
	case time.Time:
		return classObject
	}

	if IsNil(v) {
		return classNull
	}

	if _, ok := AsNumber(v); ok {
		return classNumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.String:
		return classString
	default:
		return classObject
	}
}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNil reports whether v is nil, Undefined, or a typed nil pointer, map,
// slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil || IsUndefined(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNullish reports whether v is nil or Undefined.
func IsNullish(v any) bool {
	return v == nil || IsUndefined(v)
}
