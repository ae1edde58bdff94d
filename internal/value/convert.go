package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/copystructure"
)

// ToString converts v to its string form.
//
// Numbers are formatted without a trailing fraction when integral, slices are
// joined with commas, and maps or structs become "[object Object]".
func ToString(v any) string {
	switch classOf(v) {
	case classUndefined:
		return "undefined"
	case classNull:
		return "null"
	case classBool:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	case classNumber:
		n, _ := AsNumber(v)
		return FormatNumber(n)
	case classString:
		return reflect.ValueOf(v).String()
	}

	if t, ok := v.(time.Time); ok {
		return t.Format("Mon Jan 02 2006 15:04:05 GMT-0700")
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	if items, ok := ToList(v); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			if IsNullish(item) {
				continue
			}

			parts[i] = ToString(item)
		}

		return strings.Join(parts, ",")
	}

	return "[object Object]"
}

// FormatNumber formats n the way numbers print in JSON-like documents:
// integral values carry no fraction, NaN and infinities are spelled out.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)

		return strings.Replace(s, "e-0", "e-", 1)
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToList returns the elements of v when v is a slice or an array.
func ToList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	if IsNil(v) {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// DeepCopy returns a deep copy of v. Values that cannot be copied are
// returned as-is.
func DeepCopy(v any) any {
	if IsNullish(v) {
		return v
	}

	c, err := copystructure.Copy(v)
	if err != nil {
		return v
	}

	return c
}
