// Package table holds the indexed tabular container: an ordered, non-unique
// index with a parallel float64 value column.
package table

import (
	"fmt"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/core/model"
)

// Table is an index column K and a value column kept in insertion order.
// The index is not unique.
type Table[K any] struct {
	index  []K
	values []float64
}

// New builds a table from parallel columns
func New[K any](index []K, values []float64) (*Table[K], error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("index has %d rows but values has %d", len(index), len(values))
	}
	return &Table[K]{index: index, values: values}, nil
}

// FromRecords indexes each record by its raw timestamp string, one row per
// record, without validating or deduplicating anything.
func FromRecords(ds model.Dataset) *Table[string] {
	return &Table[string]{
		index:  ds.Timestamps(),
		values: ds.Values(),
	}
}

// Len returns the number of rows
func (t *Table[K]) Len() int {
	return len(t.index)
}

// Index returns the index column. Callers must not modify it.
func (t *Table[K]) Index() []K {
	return t.index
}

// Values returns the value column. Callers must not modify it.
func (t *Table[K]) Values() []float64 {
	return t.values
}

// Row returns the key and value at position i
func (t *Table[K]) Row(i int) (K, float64) {
	return t.index[i], t.values[i]
}

// Copy returns a deep copy so that each consumer can mutate its own table
func (t *Table[K]) Copy() *Table[K] {
	index := make([]K, len(t.index))
	copy(index, t.index)
	values := make([]float64, len(t.values))
	copy(values, t.values)
	return &Table[K]{index: index, values: values}
}

// Head returns the first n rows (all rows when n exceeds the length)
func (t *Table[K]) Head(n int) *Table[K] {
	if n < 0 {
		n = 0
	}
	if n > len(t.index) {
		n = len(t.index)
	}
	return &Table[K]{index: t.index[:n], values: t.values[:n]}
}

// Sum adds up the value column
func (t *Table[K]) Sum() float64 {
	var total float64
	for _, v := range t.values {
		total += v
	}
	return total
}

// ColumnParser converts a column of timestamp strings into instants in loc.
type ColumnParser interface {
	ParseColumn(values []string, loc *time.Location) ([]time.Time, error)
}

// Reindex returns a table whose index is t's string index parsed by p.
// The value column is shared with t; the string index is left untouched.
func Reindex(t *Table[string], p ColumnParser, loc *time.Location) (*Table[time.Time], error) {
	parsed, err := p.ParseColumn(t.index, loc)
	if err != nil {
		return nil, err
	}
	if len(parsed) != len(t.index) {
		return nil, fmt.Errorf("parser returned %d rows for %d inputs", len(parsed), len(t.index))
	}
	return &Table[time.Time]{index: parsed, values: t.values}, nil
}
