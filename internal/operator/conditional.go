package operator

import (
	"json-mapper/internal/value"
)

// Comparison operations accepted by switch options.
const (
	OpGreater      = "gt"
	OpGreaterEqual = "egt"
	OpLess         = "lt"
	OpLessEqual    = "elt"
	OpEqual        = "eq"
	OpNotEqual     = "neq"
	OpIdentical    = "heq"
	OpNotIdentical = "nheq"
)

// Match reports whether left and right satisfy operation. eq and neq use
// loose equality, heq and nheq strict equality. Unknown operations never
// match.
func Match(left any, operation string, right any) bool {
	switch operation {
	case OpGreater:
		cmp, ok := value.Compare(left, right)
		return ok && cmp > 0
	case OpGreaterEqual:
		cmp, ok := value.Compare(left, right)
		return ok && cmp >= 0
	case OpLess:
		cmp, ok := value.Compare(left, right)
		return ok && cmp < 0
	case OpLessEqual:
		cmp, ok := value.Compare(left, right)
		return ok && cmp <= 0
	case OpEqual:
		return value.LooseEqual(left, right)
	case OpNotEqual:
		return !value.LooseEqual(left, right)
	case OpIdentical:
		return value.StrictEqual(left, right)
	case OpNotIdentical:
		return !value.StrictEqual(left, right)
	default:
		return false
	}
}

// switchOp returns the result of the first option whose comparison matches,
// or the default.
//
// The right operand is rightValue when truthy, else the value at rightSelect,
// else nil. A matching option without a result falls through to the default.
func switchOp(_ *Library, p Params, source any) any {
	for _, option := range p.Objects("options") {
		left := lookup(source, option.Path("leftSelect"))

		var right any

		switch {
		case value.Truthy(option.Value("rightValue")):
			right = option.Value("rightValue")
		case value.Truthy(option.Value("rightSelect")):
			right = lookup(source, option.Path("rightSelect"))
		}

		if !Match(left, option.String("operation"), right) {
			continue
		}

		if result, ok := option.Get("result"); ok {
			return result
		}

		break
	}

	return p.Value("default")
}

// ifOp returns the value at targetSelect unless it is empty, then the value at
// defaultSelect when truthy, then the literal default.
func ifOp(_ *Library, p Params, source any) any {
	target := lookup(source, p.Path("targetSelect"))
	if !value.IsEmpty(target) {
		return target
	}

	fallback := lookup(source, p.Path("defaultSelect"))
	if value.Truthy(fallback) {
		return fallback
	}

	return p.Value("default")
}
