package mapper

import (
	"time"

	"github.com/rs/zerolog"

	"json-mapper/internal/operator"
)

// Rand is a source of uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Option configures a Dispatcher or a Mapper.
type Option func(*options)

type options struct {
	logger    zerolog.Logger
	operators []operator.Option
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRand sets the random source of the randomized operators.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.operators = append(o.operators, operator.WithRand(r))
	}
}

// WithClock sets the clock used for time-based operators.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.operators = append(o.operators, operator.WithClock(clock))
	}
}

// WithLogger sets the logger. Field resolution is logged at trace level and
// rules that produce nothing at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
