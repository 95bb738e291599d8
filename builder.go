package finquant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Magic-Academy/FinQuant/timeseries"
)

// This file assembles portfolios from raw tabular data. Raw price tables may
// come from different sources with inconsistent column labels, so resolution
// goes through an explicit ordered list of candidate-label generators rather
// than ad hoc string probing.

// DefaultDataColumns is the data column extracted from a raw price table when
// the caller does not request specific ones.
var DefaultDataColumns = []string{"Adj. Close"}

// sourceLabel is the "<name> - <column>" labeling convention of source-tagged
// price tables.
func sourceLabel(name, column string) string { return name + " - " + column }

// labelCandidates generates, in resolution order, the column labels an
// instrument's data column may hide behind:
//  1. the bare instrument name,
//  2. the source-normalized name tagged with the column,
//  3. the bare name tagged with the column.
var labelCandidates = []func(name, column string) string{
	func(name, _ string) string { return name },
	func(name, column string) string { return sourceLabel(NormalizeTicker(name), column) },
	func(name, column string) string { return sourceLabel(name, column) },
}

// resolveLabel returns the first candidate label present in the table.
func resolveLabel(data *timeseries.Table, name, column string) (string, error) {
	labels := data.Labels()
	for _, candidate := range labelCandidates {
		label := candidate(name, column)
		for _, l := range labels {
			if l == label {
				return label, nil
			}
		}
	}
	return "", fmt.Errorf("%w: instrument %q, data column %q", ErrColumnResolution, name, column)
}

// anyNameInColumns reports whether at least one instrument name appears, as a
// substring or exact match, among the table's column labels.
func anyNameInColumns(names []string, data *timeseries.Table) bool {
	for _, label := range data.Labels() {
		for _, name := range names {
			if strings.Contains(label, name) {
				return true
			}
		}
	}
	return false
}

// extractDataColumns returns the subset of data holding only the requested
// data columns of the named instruments, with source-normalized labels
// rewritten to bare names. When exactly one data column per instrument was
// requested, each resulting column is renamed to the bare instrument name.
//
// The second return value maps each instrument name to its resolved labels in
// the returned table. An instrument's columns are identified by this exact
// list, never by substring matching, so names that are prefixes of other
// names ("GO" next to "GOOG") stay disjoint.
func extractDataColumns(data *timeseries.Table, names, columns []string) (*timeseries.Table, map[string][]string, error) {
	resolved := make([]string, 0, len(names)*len(columns))
	byName := make(map[string][]string, len(names))
	for _, name := range names {
		for _, column := range columns {
			label, err := resolveLabel(data, name, column)
			if err != nil {
				return nil, nil, err
			}
			resolved = append(resolved, label)
			byName[name] = append(byName[name], label)
		}
	}

	subset, err := data.Select(resolved...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrColumnResolution, err)
	}

	rename := func(from, to string) {
		subset.Rename(from, to)
		for name, labels := range byName {
			for i, label := range labels {
				if label == from {
					byName[name][i] = to
				}
			}
		}
	}

	// Strip the source normalization from the labels.
	for _, name := range names {
		normalized := NormalizeTicker(name)
		if normalized == name {
			continue
		}
		for _, label := range subset.Labels() {
			if strings.Contains(label, normalized) {
				rename(label, strings.Replace(label, normalized, name, 1))
			}
		}
	}

	// A single data column per instrument is renamed to the bare name.
	if len(columns) == 1 {
		for _, name := range names {
			rename(sourceLabel(name, columns[0]), name)
		}
	}
	return subset, byName, nil
}

// BuildFromTable validates and assembles a Portfolio from a metadata table
// and a raw price table, extracting the given data columns (DefaultDataColumns
// when nil) for each instrument named in the metadata.
func BuildFromTable(metadata []Metadata, data *timeseries.Table, dataColumns []string) (*Portfolio, error) {
	if len(dataColumns) == 0 {
		dataColumns = DefaultDataColumns
	}
	names := make([]string, len(metadata))
	for i, m := range metadata {
		names[i] = m.Name
	}
	if data == nil || !anyNameInColumns(names, data) {
		return nil, fmt.Errorf("%w: names %v", ErrNoMatchingColumns, names)
	}

	extracted, byName, err := extractDataColumns(data, names, dataColumns)
	if err != nil {
		return nil, err
	}

	pf := NewPortfolio()
	for _, m := range metadata {
		slice, err := extracted.Select(byName[m.Name]...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrColumnResolution, err)
		}
		h, err := NewHolding(m, slice)
		if err != nil {
			return nil, err
		}
		if err := pf.AddHolding(h); err != nil {
			return nil, err
		}
	}
	return pf, nil
}

// BuildFromQuery normalizes the instrument names to the data source's naming
// convention, fetches a price table through the given market-data client and
// assembles a Portfolio from it.
func BuildFromQuery(metadata []Metadata, names []string, from, to timeseries.Date, client Fetcher) (*Portfolio, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: no market-data client", ErrInvalidArguments)
	}
	data, err := client.FetchPrices(names, from, to)
	if err != nil {
		if errors.Is(err, ErrDataSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	if data == nil || data.NumColumns() == 0 {
		return nil, fmt.Errorf("%w: empty payload for %v", ErrDataSourceUnavailable, names)
	}
	return BuildFromTable(metadata, data, nil)
}

// buildOptions accumulates the mutually exclusive option sets of Build.
type buildOptions struct {
	table       *timeseries.Table
	names       []string
	from, to    timeseries.Date
	hasRange    bool
	client      Fetcher
	dataColumns []string
}

// BuildOption configures Build. Exactly one of WithTable or WithNames must be
// supplied; the remaining options each belong to one of the two sets.
type BuildOption func(*buildOptions)

// WithTable supplies a raw price table to build from.
func WithTable(t *timeseries.Table) BuildOption {
	return func(o *buildOptions) { o.table = t }
}

// WithNames supplies the instrument names to query the market-data source for.
func WithNames(names ...string) BuildOption {
	return func(o *buildOptions) { o.names = names }
}

// WithRange bounds the market-data query. Zero dates leave a bound open.
func WithRange(from, to timeseries.Date) BuildOption {
	return func(o *buildOptions) { o.from, o.to, o.hasRange = from, to, true }
}

// WithClient supplies the market-data client used with WithNames.
func WithClient(c Fetcher) BuildOption {
	return func(o *buildOptions) { o.client = c }
}

// WithDataColumns selects the data columns extracted from a supplied table.
func WithDataColumns(columns ...string) BuildOption {
	return func(o *buildOptions) { o.dataColumns = columns }
}

// Build is the single entry point for portfolio construction. It accepts a
// metadata table plus exactly one of two option sets:
//
//	WithNames (optionally WithRange, WithClient)
//	WithTable (optionally WithDataColumns)
//
// Supplying both sets, neither, or options of one set mixed into the other
// fails with ErrInvalidArguments.
func Build(metadata []Metadata, opts ...BuildOption) (*Portfolio, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.table != nil && o.names != nil:
		return nil, fmt.Errorf("%w: WithTable and WithNames are mutually exclusive", ErrInvalidArguments)
	case o.table == nil && o.names == nil:
		return nil, fmt.Errorf("%w: one of WithTable or WithNames is required", ErrInvalidArguments)
	case o.table != nil && (o.hasRange || o.client != nil):
		return nil, fmt.Errorf("%w: WithRange and WithClient require WithNames", ErrInvalidArguments)
	case o.names != nil && o.dataColumns != nil:
		return nil, fmt.Errorf("%w: WithDataColumns requires WithTable", ErrInvalidArguments)
	}

	if o.table != nil {
		return BuildFromTable(metadata, o.table, o.dataColumns)
	}
	return BuildFromQuery(metadata, o.names, o.from, o.to, o.client)
}
