package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type article struct {
	Title string
	views int
}

type hidden struct {
	views int
}

func TestTruthy(t *testing.T) {
	var nilMap map[string]any

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"undefined", Undefined, false},
		{"nil", nil, false},
		{"typed nil map", nilMap, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0, false},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"number", 42, true},
		{"negative", -1.5, true},
		{"empty string", "", false},
		{"string", "0", true},
		{"empty slice", []any{}, true},
		{"empty map", map[string]any{}, true},
		{"struct", article{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"undefined", Undefined, true},
		{"empty string", "", true},
		{"string", "a", false},
		{"empty slice", []string{}, true},
		{"slice", []any{1}, false},
		{"empty map", map[string]any{}, true},
		{"map", map[string]any{"a": 1}, false},
		{"number", 12, true},
		{"bool", true, true},
		{"struct with exported fields", article{}, false},
		{"struct without exported fields", hidden{}, true},
		{"pointer to struct", &article{}, false},
		{"time", time.Now(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.v))
		})
	}
}

func TestIsNil(t *testing.T) {
	var p *article

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(Undefined))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))

	assert.True(t, IsNullish(Undefined))
	assert.False(t, IsNullish(p))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
	}{
		{"nil", nil, 0},
		{"true", true, 1},
		{"false", false, 0},
		{"int", 7, 7},
		{"uint8", uint8(3), 3},
		{"float32", float32(1.5), 1.5},
		{"empty string", "", 0},
		{"blank string", "  ", 0},
		{"decimal", " 2.5 ", 2.5},
		{"signed", "-3", -3},
		{"exponent", "1e3", 1000},
		{"hex", "0x1f", 31},
		{"binary", "0b101", 5},
		{"octal", "0o17", 15},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative infinity", "-Infinity", math.Inf(-1)},
		{"single element slice", []any{"4"}, 4},
		{"empty slice", []any{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.v))
		})
	}

	for _, v := range []any{Undefined, "abc", "1.2.3x", "0xzz", map[string]any{}, []any{1, 2}} {
		assert.True(t, math.IsNaN(ToNumber(v)), "%#v", v)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"undefined", Undefined, "undefined"},
		{"nil", nil, "null"},
		{"bool", true, "true"},
		{"integral float", 3.0, "3"},
		{"fraction", 0.25, "0.25"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"NaN", math.NaN(), "NaN"},
		{"infinity", math.Inf(-1), "-Infinity"},
		{"large", 1e21, "1e+21"},
		{"small", 1e-7, "1e-7"},
		{"string", "abc", "abc"},
		{"slice", []any{1, "a", nil, 2.5}, "1,a,,2.5"},
		{"map", map[string]any{"a": 1}, "[object Object]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.v))
		})
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same numbers", 1, 1.0, true},
		{"number and string", 1, "1", true},
		{"string and number", "2.0", 2, true},
		{"bool and number", true, 1, true},
		{"bool and string", false, "", true},
		{"nil and undefined", nil, Undefined, true},
		{"nil and zero", nil, 0, false},
		{"undefined and empty string", Undefined, "", false},
		{"different strings", "a", "b", false},
		{"slice and string", []any{1, 2}, "1,2", true},
		{"NaN", math.NaN(), math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooseEqual(tt.a, tt.b))
		})
	}
}

func TestStrictEqual(t *testing.T) {
	m := map[string]any{"a": 1}

	assert.True(t, StrictEqual(1, 1.0))
	assert.True(t, StrictEqual("a", "a"))
	assert.True(t, StrictEqual(m, m))
	assert.True(t, StrictEqual(nil, nil))
	assert.False(t, StrictEqual(1, "1"))
	assert.False(t, StrictEqual(nil, Undefined))
	assert.False(t, StrictEqual(m, map[string]any{"a": 1}))
	assert.False(t, StrictEqual(math.NaN(), math.NaN()))

	assert.True(t, SameValueZero(math.NaN(), math.NaN()))
	assert.True(t, SameValueZero("x", "x"))
	assert.False(t, SameValueZero(1, "1"))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   any
		want   int
		wantOK bool
	}{
		{"numbers", 3, 2, 1, true},
		{"equal numbers", 2, 2.0, 0, true},
		{"strings lexically", "10", "9", -1, true},
		{"string and number numerically", "10", 9, 1, true},
		{"nil as zero", nil, 1, -1, true},
		{"bool as number", true, 0, 1, true},
		{"undefined", Undefined, 1, 0, false},
		{"non-numeric string", "abc", 1, 0, false},
		{"object", map[string]any{}, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToList(t *testing.T) {
	items, ok := ToList([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, items)

	items, ok = ToList([2]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, items)

	_, ok = ToList("ab")
	assert.False(t, ok)

	var nilSlice []string
	_, ok = ToList(nilSlice)
	assert.False(t, ok)
}

func TestDeepCopy(t *testing.T) {
	original := []any{"a", map[string]any{"b": []any{1}}}

	copied, ok := DeepCopy(original).([]any)
	require.True(t, ok)
	assert.Equal(t, original, copied)

	copied[1].(map[string]any)["b"] = "changed"
	assert.Equal(t, []any{1}, original[1].(map[string]any)["b"])

	assert.Nil(t, DeepCopy(nil))
	assert.True(t, IsUndefined(DeepCopy(Undefined)))
}
