package finquant

import "errors"

// This file defines the error taxonomy of the package. All errors are raised
// synchronously at the point of detection and are never retried internally;
// callers match them with errors.Is.

var (
	// ErrValidation reports missing or invalid required fields at construction
	// time, such as an empty instrument name or a non-positive FMV.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName reports a holding name collision on AddHolding.
	ErrDuplicateName = errors.New("duplicate holding name")

	// ErrDateAlignment reports a price-history merge whose date index is
	// incompatible with the portfolio's existing index.
	ErrDateAlignment = errors.New("incompatible date index")

	// ErrNoMatchingColumns reports that none of the requested instrument names
	// appear among the price table's column labels.
	ErrNoMatchingColumns = errors.New("no instrument name matches any column label")

	// ErrColumnResolution reports that a specific instrument/data-column pair
	// could not be resolved to any column label.
	ErrColumnResolution = errors.New("cannot resolve column label")

	// ErrInvalidArguments reports an ambiguous or conflicting combination of
	// builder options.
	ErrInvalidArguments = errors.New("invalid combination of build options")

	// ErrUninitialized reports a statistic requested from a portfolio that
	// holds nothing yet.
	ErrUninitialized = errors.New("portfolio has no holdings")

	// ErrDataSourceUnavailable reports that the external market-data source
	// could not be reached or returned no data. Retries are the caller's
	// responsibility.
	ErrDataSourceUnavailable = errors.New("market data source unavailable")
)
