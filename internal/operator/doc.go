// Package operator implements the transformation operators a mapping rule can
// name through its "type" tag.
//
// Every operator reads its parameters and the source without modifying either,
// and degrades to a documented fallback instead of failing: a missing or
// mistyped parameter behaves as if absent. Unknown tags produce nil.
//
// Operators that draw random numbers or read the clock use the Rand and clock
// injected into the Library, so tests can substitute deterministic ones.
package operator
