package value

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// AsNumber returns v as a float64 when v is any Go numeric kind.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// ToNumber coerces v to a number.
//
// Undefined, objects and malformed strings become NaN; nil and "" become 0;
// booleans become 0 or 1; slices are coerced through their string form;
// times become epoch milliseconds.
func ToNumber(v any) float64 {
	switch classOf(v) {
	case classUndefined:
		return math.NaN()
	case classNull:
		return 0
	case classBool:
		if reflect.ValueOf(v).Bool() {
			return 1
		}

		return 0
	case classNumber:
		n, _ := AsNumber(v)
		return n
	case classString:
		return parseNumber(reflect.ValueOf(v).String())
	}

	if t, ok := v.(time.Time); ok {
		return float64(t.UnixMilli())
	}

	if _, ok := ToList(v); ok {
		return parseNumber(ToString(v))
	}

	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0

		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}

		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}

			return float64(u)
		}
	}

	if strings.Trim(s, "0123456789+-.eE") != "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}
