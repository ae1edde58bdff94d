package rules

import (
	"sort"

	"json-mapper/internal/value"
)

// Well-known parameter names.
const (
	ParamType       = "type"
	ParamForceValue = "forceValue"
)

// Params are the parameters of an Operator rule.
// Accessors never fail: missing or mistyped parameters read as absent.
type Params map[string]any

// Get returns the parameter and whether it is present.
func (p Params) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Value returns the parameter, or nil when absent.
func (p Params) Value(key string) any {
	return p[key]
}

// Has reports whether the parameter is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Or returns the parameter when it is truthy and fallback otherwise.
func (p Params) Or(key string, fallback any) any {
	if v := p[key]; value.Truthy(v) {
		return v
	}

	return fallback
}

// String returns the parameter when it is a string, or "".
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Path returns the parameter as a select path. Non-string scalars are
// converted to their string form; absent parameters yield "".
func (p Params) Path(key string) string {
	v, ok := p[key]
	if !ok || value.IsNullish(v) {
		return ""
	}

	return value.ToString(v)
}

// List returns the parameter when it is a slice or an array.
func (p Params) List(key string) ([]any, bool) {
	return value.ToList(p[key])
}

// Paths returns the parameter as a list of select paths.
func (p Params) Paths(key string) []string {
	items, _ := p.List(key)

	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = value.ToString(item)
	}

	return paths
}

// Map returns the parameter when it is an object.
func (p Params) Map(key string) (Params, bool) {
	switch m := Normalize(p[key]).(type) {
	case map[string]any:
		return Params(m), true
	case Params:
		return m, true
	default:
		return nil, false
	}
}

// Objects returns the object elements of a list parameter, skipping anything
// else.
func (p Params) Objects(key string) []Params {
	items, _ := p.List(key)

	objects := make([]Params, 0, len(items))
	for _, item := range items {
		if m, ok := Normalize(item).(map[string]any); ok {
			objects = append(objects, Params(m))
		}
	}

	return objects
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
