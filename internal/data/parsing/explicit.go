package parsing

import (
	"time"

	"github.com/penwyp/go-datetime-bench/internal/core/constants"
)

// ExplicitStrategy decodes the known MM/DD/YY HH:MM layout by reading each
// field at its fixed offset. Anything else is rejected.
type ExplicitStrategy struct {
	BaseStrategy
}

// NewExplicitStrategy creates the strict fixed-layout strategy
func NewExplicitStrategy() *ExplicitStrategy {
	return &ExplicitStrategy{
		BaseStrategy: NewBaseStrategy(constants.StrategyExplicit,
			"fixed layout MM/DD/YY HH:MM, fixed-offset field extraction, strict"),
	}
}

// ParseColumn parses every value, stopping at the first mismatch
func (s *ExplicitStrategy) ParseColumn(values []string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, ok := decodeFixed(v, loc)
		if !ok {
			return nil, &ParseError{Strategy: s.Name(), Row: i, Value: v, Err: ErrFormatMismatch}
		}
		out[i] = t
	}
	return out, nil
}

// Inspect always reports the fixed layout
func (s *ExplicitStrategy) Inspect(values []string) Inspection {
	return Inspection{Layout: constants.TimestampLayout}
}

// ParseTimestamp parses a single MM/DD/YY HH:MM value in loc
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	t, ok := decodeFixed(value, loc)
	if !ok {
		return time.Time{}, &ParseError{Strategy: constants.StrategyExplicit, Row: -1, Value: value, Err: ErrFormatMismatch}
	}
	return t, nil
}

// decodeFixed reads "MM/DD/YY HH:MM". Two-digit years pivot the same way
// as time.Parse: 69-99 are 19xx, 00-68 are 20xx.
func decodeFixed(v string, loc *time.Location) (time.Time, bool) {
	if len(v) != 14 || v[2] != '/' || v[5] != '/' || v[8] != ' ' || v[11] != ':' {
		return time.Time{}, false
	}

	month, ok1 := twoDigits(v[0], v[1])
	day, ok2 := twoDigits(v[3], v[4])
	yy, ok3 := twoDigits(v[6], v[7])
	hour, ok4 := twoDigits(v[9], v[10])
	minute, ok5 := twoDigits(v[12], v[13])
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return time.Time{}, false
	}

	year := 2000 + yy
	if yy >= 69 {
		year = 1900 + yy
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) ||
		hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
