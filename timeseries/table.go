package timeseries

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// IndexName is the name of the shared date index of a Table.
const IndexName = "Date"

var (
	// ErrLengthMismatch reports a column that does not have one value per row
	// of the date index.
	ErrLengthMismatch = errors.New("column length does not match date index")
	// ErrDuplicateLabel reports a column label already present in the table.
	ErrDuplicateLabel = errors.New("duplicate column label")
	// ErrMissingLabel reports a column label absent from the table.
	ErrMissingLabel = errors.New("no such column label")
)

// Table stores a set of labeled numeric series sharing a single chronological
// date index. It is the in-memory shape of a raw price table: one row per
// trading day, one column per price series.
type Table struct {
	days   []Date
	labels []string
	cols   [][]float64
}

// NewTable returns a table over the given date index with no columns yet.
// The index is expected to be in increasing order with no duplicates.
func NewTable(days []Date) *Table {
	return &Table{days: slices.Clone(days)}
}

// Len returns the number of rows (dates) in the table.
func (t *Table) Len() int { return len(t.days) }

// Dates returns the shared date index.
func (t *Table) Dates() []Date { return slices.Clone(t.days) }

// Labels returns the column labels, in insertion order.
func (t *Table) Labels() []string { return slices.Clone(t.labels) }

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int { return len(t.labels) }

// Column returns the values of the column with the given label.
func (t *Table) Column(label string) ([]float64, bool) {
	i := slices.Index(t.labels, label)
	if i < 0 {
		return nil, false
	}
	return slices.Clone(t.cols[i]), true
}

// AddColumn appends a labeled column. The column must have exactly one value
// per row of the index, and the label must not already be present.
func (t *Table) AddColumn(label string, values []float64) error {
	if len(values) != len(t.days) {
		return fmt.Errorf("%w: column %q has %d values for %d dates", ErrLengthMismatch, label, len(values), len(t.days))
	}
	if slices.Contains(t.labels, label) {
		return fmt.Errorf("%w: column %q", ErrDuplicateLabel, label)
	}
	t.labels = append(t.labels, label)
	t.cols = append(t.cols, slices.Clone(values))
	return nil
}

// Rename changes the label of a column. Renaming a missing label is a no-op.
func (t *Table) Rename(old, new string) {
	if i := slices.Index(t.labels, old); i >= 0 {
		t.labels[i] = new
	}
}

// Select returns a new table restricted to the given labels, in the given
// order, sharing the same date index.
func (t *Table) Select(labels ...string) (*Table, error) {
	s := NewTable(t.days)
	for _, label := range labels {
		i := slices.Index(t.labels, label)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingLabel, label)
		}
		if err := s.AddColumn(label, t.cols[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SliceContaining returns a new table holding the columns whose label contains
// the given name, preserving order. The result may be empty.
func (t *Table) SliceContaining(name string) *Table {
	s := NewTable(t.days)
	for i, label := range t.labels {
		if strings.Contains(label, name) {
			// labels are unique in t, so AddColumn cannot fail here
			s.AddColumn(label, t.cols[i])
		}
	}
	return s
}

// Rows returns an iterator over (date, values) pairs in chronological order.
// The values slice is indexed like Labels and must not be retained.
func (t *Table) Rows() iter.Seq2[Date, []float64] {
	row := make([]float64, len(t.cols))
	return func(yield func(Date, []float64) bool) {
		for r, on := range t.days {
			for c := range t.cols {
				row[c] = t.cols[c][r]
			}
			if !yield(on, row) {
				return
			}
		}
	}
}

// Equal reports whether two tables have the same index, labels and values.
func (t *Table) Equal(o *Table) bool {
	if !slices.Equal(t.days, o.days) || !slices.Equal(t.labels, o.labels) {
		return false
	}
	for i := range t.cols {
		if !slices.Equal(t.cols[i], o.cols[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable(t.days)
	c.labels = slices.Clone(t.labels)
	c.cols = make([][]float64, len(t.cols))
	for i := range t.cols {
		c.cols[i] = slices.Clone(t.cols[i])
	}
	return c
}
