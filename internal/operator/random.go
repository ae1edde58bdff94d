package operator

import (
	"math"
	"strconv"
	"strings"

	"json-mapper/internal/value"
)

// uniqueIDAlphabet holds the base-32 digits used for unique id suffixes.
const uniqueIDAlphabet = "0123456789abcdefghijklmnopqrstuv"

const uniqueIDSuffixLen = 6

// randomProportion picks among the options whose matchSelects all resolve
// truthy, weighted by rate.
//
// The draw is a rounded uniform number in [0, total rate]; rates are
// subtracted in option order and the first option that brings the remainder
// to zero or below wins. With no candidate, or when a candidate's rate is
// missing or not a number, the default is returned.
func randomProportion(l *Library, p Params, source any) any {
	options := p.Objects("options")
	if len(options) == 0 {
		return p.Value("default")
	}

	var (
		total      float64
		candidates []Params
		rates      []float64
	)

	for _, option := range options {
		if !allTruthy(source, option.Paths("matchSelects")) {
			continue
		}

		rate, ok := rateOf(option)
		if !ok {
			return p.Value("default")
		}

		total += rate
		candidates = append(candidates, option)
		rates = append(rates, rate)
	}

	draw := math.Floor(l.rand.Float64()*total + 0.5)

	for i, option := range candidates {
		draw -= rates[i]
		if draw <= 0 {
			return option.Value("result")
		}
	}

	return p.Value("default")
}

// rateOf reads an option's weight. An explicit null weighs zero.
func rateOf(option Params) (float64, bool) {
	raw, ok := option.Get("rate")
	if !ok {
		return 0, false
	}

	rate := value.ToNumber(raw)

	return rate, !math.IsNaN(rate)
}

func allTruthy(source any, paths []string) bool {
	for _, path := range paths {
		if !value.Truthy(lookup(source, path)) {
			return false
		}
	}

	return true
}

// randomNum returns min + floor(rand * (max - min)). A falsy min is 0 and a
// falsy max is 100.
func randomNum(l *Library, p Params, _ any) any {
	lo := value.ToNumber(p.Or("min", 0))
	hi := value.ToNumber(p.Or("max", 100))

	return lo + math.Floor(l.rand.Float64()*(hi-lo))
}

// momentRandomUniqueID returns "<unix seconds>-<6 random base-32 digits>".
func momentRandomUniqueID(l *Library, _ Params, _ any) any {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(l.clock().Unix(), 10))
	b.WriteByte('-')

	for range uniqueIDSuffixLen {
		i := int(l.rand.Float64() * float64(len(uniqueIDAlphabet)))
		i = min(max(i, 0), len(uniqueIDAlphabet)-1)
		b.WriteByte(uniqueIDAlphabet[i])
	}

	return b.String()
}
