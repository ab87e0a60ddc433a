package model

import "time"

// Record is one generated observation: a local-naive MM/DD/YY HH:MM
// timestamp string and a standard normal value.
type Record struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Dataset is an ordered sequence of records in generation order.
type Dataset []Record

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d)
}

// Timestamps returns the timestamp column in order
func (d Dataset) Timestamps() []string {
	out := make([]string, len(d))
	for i, r := range d {
		out[i] = r.Timestamp
	}
	return out
}

// Values returns the value column in order
func (d Dataset) Values() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.Value
	}
	return out
}

// Sum adds up every value
func (d Dataset) Sum() float64 {
	var total float64
	for _, r := range d {
		total += r.Value
	}
	return total
}

// StrategyTiming is the measured cost of converting one string index
// into a date-time index.
type StrategyTiming struct {
	Strategy    string        `json:"strategy"`
	Description string        `json:"description"`
	Rows        int           `json:"rows"`
	Elapsed     time.Duration `json:"elapsedNs"`
	Layout      string        `json:"layout,omitempty"` // column layout, when the strategy settles on one
	Fallbacks   int           `json:"fallbacks"`        // rows that need per-value autodetection
	Err         string        `json:"error,omitempty"`
}

// Failed reports whether the strategy returned an error
func (t StrategyTiming) Failed() bool {
	return t.Err != ""
}
