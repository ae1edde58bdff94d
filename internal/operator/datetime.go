package operator

import (
	"errors"
	"math"
	"time"

	"github.com/nleeper/goment"

	"json-mapper/internal/value"
)

// DefaultDateFormat is used when a moment-format rule has no format.
const DefaultDateFormat = "YYYY-MM-DDTHH:mm:ssZ"

var errInvalidDate = errors.New("invalid date")

// InvalidDate is returned for values that cannot be read as a date.
const InvalidDate = "Invalid date"

// momentFormat formats the selected date with moment-style tokens
// (YYYY-MM-DD, HH:mm:ss, X, ...). Falsy values format as "".
func momentFormat(_ *Library, p Params, source any) any {
	v := lookup(source, p.Path("select"))
	if !value.Truthy(v) {
		return ""
	}

	g, err := toMoment(v)
	if err != nil {
		return InvalidDate
	}

	format := p.String("format")
	if format == "" {
		format = DefaultDateFormat
	}

	return g.Format(format)
}

// Layouts for ISO-8601 strings that carry their own offset. Z07:00 also
// accepts a bare "Z", and fractional seconds are read even when a layout
// leaves them out.
var zonedLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
}

// Layouts for ISO-8601 strings without an offset, read as local time.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// toMoment reads times, epoch milliseconds and date strings. Every date is
// moved into the local zone so one instant always formats the same way.
func toMoment(v any) (*goment.Goment, error) {
	var t time.Time

	switch d := v.(type) {
	case time.Time:
		t = d
	case *time.Time:
		t = *d
	case string:
		parsed, err := parseDate(d)
		if err != nil {
			return nil, err
		}

		t = parsed
	default:
		n, ok := value.AsNumber(v)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, errInvalidDate
		}

		t = time.UnixMilli(int64(n))
	}

	return goment.New(t.In(time.Local))
}

// parseDate reads the ISO-8601 forms first and leaves anything else to
// goment's own parser.
func parseDate(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	g, err := goment.New(s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}

	return g.ToTime(), nil
}
