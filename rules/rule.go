package rules

import (
	"reflect"

	"json-mapper/internal/value"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the shape of a Rule.
type Kind int

const (
	KindUnknown  Kind = iota // unknown
	KindDirect               // direct
	KindList                 // list
	KindOperator             // operator
)

// Rule is one of Direct, List, Operator or Unknown.
type Rule interface {
	Kind() Kind
	isRule()
}

// Direct resolves a select path against the source.
type Direct struct {
	Path string
}

// List collects the values of literal top-level source keys.
type List struct {
	Keys []string
}

// Operator applies the transformation named by Tag.
type Operator struct {
	// Tag is the value of the "type" parameter, or "" when absent or not a
	// string.
	Tag string
	// Params holds every parameter of the rule object, "type" included.
	Params Params
}

// Unknown carries a rule value of no recognized shape.
type Unknown struct {
	Raw any
}

func (Direct) Kind() Kind   { return KindDirect }
func (List) Kind() Kind     { return KindList }
func (Operator) Kind() Kind { return KindOperator }
func (Unknown) Kind() Kind  { return KindUnknown }

func (Direct) isRule()   {}
func (List) isRule()     {}
func (Operator) isRule() {}
func (Unknown) isRule()  {}

// ForceValue returns the forceValue parameter, which overrides the operator
// whenever it is present, even as null.
func (o Operator) ForceValue() (any, bool) {
	return o.Params.Get(ParamForceValue)
}

// NewOperator builds an Operator rule from its parameters.
func NewOperator(params map[string]any) Operator {
	p := Params(params)
	tag, _ := p[ParamType].(string)

	return Operator{Tag: tag, Params: p}
}

// FromValue converts a decoded rule value into a Rule.
// Falsy values yield nil.
func FromValue(v any) Rule {
	v = Normalize(v)
	if !value.Truthy(v) {
		return nil
	}

	switch x := v.(type) {
	case Rule:
		return x
	case string:
		return Direct{Path: x}
	case map[string]any:
		return NewOperator(x)
	}

	if items, ok := value.ToList(v); ok {
		keys := make([]string, len(items))
		for i, item := range items {
			keys[i] = value.ToString(item)
		}

		return List{Keys: keys}
	}

	if reflect.ValueOf(v).Kind() == reflect.String {
		return Direct{Path: reflect.ValueOf(v).String()}
	}

	return Unknown{Raw: v}
}

// ToValue converts a Rule back into its plain authored form.
func ToValue(r Rule) any {
	switch x := r.(type) {
	case Direct:
		return x.Path
	case List:
		return x.Keys
	case Operator:
		return map[string]any(x.Params)
	case Unknown:
		return x.Raw
	default:
		return nil
	}
}

// Normalize rewrites maps with non-string keys, as produced by some decoders,
// into map[string]any, recursively. The input is never modified: containers
// are copied only when something inside them changes.
func Normalize(v any) any {
	out, _ := normalize(v)
	return out
}

func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, item := range x {
			m[value.ToString(k)], _ = normalize(item)
		}

		return m, true
	case map[string]any:
		var m map[string]any

		for k, item := range x {
			n, changed := normalize(item)
			if !changed {
				continue
			}

			if m == nil {
				m = make(map[string]any, len(x))
				for k2, item2 := range x {
					m[k2] = item2
				}
			}

			m[k] = n
		}

		if m == nil {
			return x, false
		}

		return m, true
	case []any:
		var out []any

		for i, item := range x {
			n, changed := normalize(item)
			if !changed {
				continue
			}

			if out == nil {
				out = append([]any(nil), x...)
			}

			out[i] = n
		}

		if out == nil {
			return x, false
		}

		return out, true
	default:
		return v, false
	}
}
