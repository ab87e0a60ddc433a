package parsing

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/penwyp/go-datetime-bench/internal/util"
)

// InferredStrategy settles on one layout from a sample of the column, applies
// it to every row, and autodetects only the rows that layout rejects.
// Mixed layouts are tolerated silently.
type InferredStrategy struct {
	BaseStrategy
	sampleSize int
}

// NewInferredStrategy creates the sampling strategy. A non-positive
// sampleSize falls back to constants.InferenceSampleSize.
func NewInferredStrategy(sampleSize int) *InferredStrategy {
	if sampleSize <= 0 {
		sampleSize = constants.InferenceSampleSize
	}
	return &InferredStrategy{
		BaseStrategy: NewBaseStrategy(constants.StrategyInferred,
			"infers one layout from a sample, per-value fallback on mismatch"),
		sampleSize: sampleSize,
	}
}

// ParseColumn applies the inferred layout with per-value fallback
func (s *InferredStrategy) ParseColumn(values []string, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	layout := s.inferLayout(values, loc)
	out := make([]time.Time, len(values))
	for i, v := range values {
		if layout != "" {
			if t, err := time.ParseInLocation(layout, v, loc); err == nil {
				out[i] = t
				continue
			}
		}
		t, err := autodetect(v, loc)
		if err != nil {
			return nil, &ParseError{Strategy: s.Name(), Row: i, Value: v, Err: err}
		}
		out[i] = t
	}
	return out, nil
}

// Inspect reports the inferred layout and how many rows it rejects
func (s *InferredStrategy) Inspect(values []string) Inspection {
	layout := s.inferLayout(values, time.UTC)
	if layout == "" {
		return Inspection{Fallbacks: len(values)}
	}

	fallbacks := 0
	for _, v := range values {
		if _, err := time.ParseInLocation(layout, v, time.UTC); err != nil {
			fallbacks++
		}
	}
	return Inspection{Layout: layout, Fallbacks: fallbacks}
}

// inferLayout detects the layout of evenly spaced sample values and returns
// the most frequent one that actually parses its own sample. Ties go to the
// layout seen first.
func (s *InferredStrategy) inferLayout(values []string, loc *time.Location) string {
	if len(values) == 0 {
		return ""
	}

	stride := 1
	if len(values) > s.sampleSize {
		stride = len(values) / s.sampleSize
	}

	counts := make(map[string]int)
	var order []string
	for i, n := 0, 0; i < len(values) && n < s.sampleSize; i, n = i+stride, n+1 {
		v := values[i]
		layout, err := dateparse.ParseFormat(v)
		if err != nil {
			continue
		}
		if _, err := time.ParseInLocation(layout, v, loc); err != nil {
			continue
		}
		if counts[layout] == 0 {
			order = append(order, layout)
		}
		counts[layout]++
	}

	best := ""
	for _, layout := range order {
		if counts[layout] > counts[best] {
			best = layout
		}
	}
	if best != "" && len(order) > 1 {
		util.LogDebug("inferred layout from mixed sample",
			util.F("layout", best), util.F("candidates", len(order)))
	}
	return best
}
