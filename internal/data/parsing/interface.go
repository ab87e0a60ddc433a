// Package parsing converts the raw MM/DD/YY HH:MM timestamp column into
// date-time values. Three interchangeable strategies trade strictness for
// speed: autodetection per value (generic), a fixed layout (explicit), and a
// layout inferred once from a sample (inferred).
package parsing

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrFormatMismatch is returned by the explicit strategy for any value
	// that does not follow MM/DD/YY HH:MM exactly.
	ErrFormatMismatch = errors.New("value does not match layout MM/DD/YY HH:MM")

	// ErrUnparseable is returned by the autodetecting strategies when no
	// date/time layout can be recognised.
	ErrUnparseable = errors.New("no recognizable date/time layout")
)

// ParseError reports the row and value a strategy could not convert.
type ParseError struct {
	Strategy string
	Row      int // -1 for a standalone value
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: cannot parse %q: %v", e.Strategy, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: row %d: cannot parse %q: %v", e.Strategy, e.Row, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Strategy converts a column of timestamp strings into instants in loc.
// Implementations must not modify values.
type Strategy interface {
	Name() string
	Description() string
	ParseColumn(values []string, loc *time.Location) ([]time.Time, error)
}

// Inspection describes how a strategy would treat a column.
type Inspection struct {
	Layout    string // Go layout applied to the whole column, empty when none
	Fallbacks int    // rows that need per-value autodetection
}

// Inspector is implemented by strategies that apply one layout to the
// whole column. It is kept out of the timed path.
type Inspector interface {
	Inspect(values []string) Inspection
}

// BaseStrategy provides the naming shared by all strategies
type BaseStrategy struct {
	name        string
	description string
}

// NewBaseStrategy creates a new base strategy
func NewBaseStrategy(name, description string) BaseStrategy {
	return BaseStrategy{name: name, description: description}
}

// Name returns the strategy name
func (s BaseStrategy) Name() string {
	return s.name
}

// Description returns the strategy description
func (s BaseStrategy) Description() string {
	return s.description
}
