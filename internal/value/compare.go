package value

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// StrictEqual compares a and b without type coercion.
func StrictEqual(a, b any) bool {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return false
	}

	switch ca {
	case classUndefined, classNull:
		return true
	case classBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case classNumber:
		x, _ := AsNumber(a)
		y, _ := AsNumber(b)

		return x == y
	case classString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	default:
		return sameObject(a, b)
	}
}

// SameValueZero is StrictEqual except that NaN equals NaN.
func SameValueZero(a, b any) bool {
	if classOf(a) == classNumber && classOf(b) == classNumber {
		x, _ := AsNumber(a)
		y, _ := AsNumber(b)

		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
	}

	return StrictEqual(a, b)
}

// LooseEqual compares a and b, coercing between numbers, strings, booleans
// and objects. nil and Undefined are equal to each other and to nothing else.
func LooseEqual(a, b any) bool {
	ca, cb := classOf(a), classOf(b)
	if ca == cb {
		return StrictEqual(a, b)
	}

	nullishA := ca == classUndefined || ca == classNull
	nullishB := cb == classUndefined || cb == classNull

	switch {
	case nullishA || nullishB:
		return nullishA && nullishB
	case ca == classBool:
		return LooseEqual(ToNumber(a), b)
	case cb == classBool:
		return LooseEqual(a, ToNumber(b))
	case ca == classNumber && cb == classString:
		return ToNumber(a) == ToNumber(b)
	case ca == classString && cb == classNumber:
		return ToNumber(a) == ToNumber(b)
	case ca == classObject:
		return LooseEqual(ToString(a), b)
	case cb == classObject:
		return LooseEqual(a, ToString(b))
	default:
		return false
	}
}

// Compare orders a and b. Two strings compare lexically; anything else
// compares numerically. ok is false when the values are unordered, which is
// the case whenever either side coerces to NaN.
func Compare(a, b any) (cmp int, ok bool) {
	pa, pb := toPrimitive(a), toPrimitive(b)

	if classOf(pa) == classString && classOf(pb) == classString {
		return strings.Compare(ToString(pa), ToString(pb)), true
	}

	x, y := ToNumber(pa), ToNumber(pb)
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}

	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	default:
		return 0, true
	}
}

// toPrimitive reduces objects to the scalar used in relational comparisons:
// times compare by epoch milliseconds, slices by their string form.
func toPrimitive(v any) any {
	if classOf(v) != classObject {
		return v
	}

	if t, ok := v.(time.Time); ok {
		return float64(t.UnixMilli())
	}

	if _, ok := ToList(v); ok {
		return ToString(v)
	}

	return Undefined
}

// sameObject reports identity for reference kinds and equality for
// comparable value kinds.
func sameObject(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}

	if ra.Comparable() {
		return a == b
	}

	return false
}

func isTime(rv reflect.Value) bool {
	return rv.Type() == reflect.TypeOf(time.Time{})
}
