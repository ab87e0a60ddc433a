package parsing

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/penwyp/go-datetime-bench/internal/core/constants"
)

// GenericStrategy autodetects the layout of every value independently.
// Ambiguous slash dates are read month first.
type GenericStrategy struct {
	BaseStrategy
}

// NewGenericStrategy creates the per-value autodetecting strategy
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{
		BaseStrategy: NewBaseStrategy(constants.StrategyGeneric,
			"autodetects the layout of every value, no hint"),
	}
}

// ParseColumn autodetects each value in turn
func (s *GenericStrategy) ParseColumn(values []string, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	out := make([]time.Time, len(values))
	for i, v := range values {
		t, err := autodetect(v, loc)
		if err != nil {
			return nil, &ParseError{Strategy: s.Name(), Row: i, Value: v, Err: err}
		}
		out[i] = t
	}
	return out, nil
}

func autodetect(v string, loc *time.Location) (time.Time, error) {
	t, err := dateparse.ParseIn(v, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return t, nil
}
