// Package value implements the dynamic value semantics the rule engine relies on.
//
// Sources and rule parameters are untyped (decoded JSON, YAML or TOML, or plain
// Go values), so every operator needs the same small vocabulary to reason about
// them:
//
//   - Truthiness: nil, undefined, false, 0, NaN and "" are falsy; everything
//     else, including empty slices and maps, is truthy.
//   - Emptiness: nil, empty strings, empty collections, and every scalar that
//     is not a string count as empty.
//   - Equality: loose equality coerces between numbers, strings and booleans,
//     strict equality never coerces.
//   - Numeric and string coercion.
//
// Undefined is distinct from nil: nil is a present null value, Undefined marks
// the absence of a value.
package value
