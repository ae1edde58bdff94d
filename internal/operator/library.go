package operator

import (
	"math/rand/v2"
	"sort"
	"time"

	"json-mapper/internal/selector"
	"json-mapper/internal/value"
	"json-mapper/rules"
)

// Params is an alias kept short for operator signatures.
type Params = rules.Params

// Rand is the source of uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Clock returns the current time.
type Clock func() time.Time

// Library dispatches operator rules to their implementation by tag.
// A Library is safe for concurrent use when its Rand and Clock are.
type Library struct {
	rand     Rand
	clock    Clock
	registry map[string]Func
}

// Option configures a Library.
type Option func(*Library)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(l *Library) {
		if r != nil {
			l.rand = r
		}
	}
}

// WithClock replaces the clock.
func WithClock(c Clock) Option {
	return func(l *Library) {
		if c != nil {
			l.clock = c
		}
	}
}

// New creates a Library with every built-in operator.
func New(opts ...Option) *Library {
	l := &Library{
		rand:     globalRand{},
		clock:    time.Now,
		registry: builtins,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Apply runs the operator named by op.Tag. Unknown tags yield nil.
func (l *Library) Apply(op rules.Operator, source any) any {
	fn, ok := l.registry[op.Tag]
	if !ok {
		return nil
	}

	if op.Params == nil {
		op.Params = Params{}
	}

	return fn(l, op.Params, source)
}

// Has reports whether tag names a known operator.
func (l *Library) Has(tag string) bool {
	_, ok := l.registry[tag]
	return ok
}

// Tags returns all operator tags in sorted order.
func (l *Library) Tags() []string {
	tags := make([]string, 0, len(l.registry))
	for tag := range l.registry {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// lookup resolves path against source, yielding value.Undefined when the
// path is missing.
func lookup(source any, path string) any {
	v, ok := selector.Resolve(source, path)
	if !ok {
		return value.Undefined
	}

	return v
}
