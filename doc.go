// Package finquant models a financial portfolio as a collection of holdings
// and computes risk and return statistics from historical price series.
//
// The core functionalities include:
//   - Holding: a single instrument's metadata (name, invested amount, free-form
//     attributes) and price history, with its expected return, volatility,
//     skewness and kurtosis derived once at construction.
//   - Portfolio: an ordered collection of holdings with a merged price table,
//     deriving portfolio-level expected return, volatility, Sharpe ratio,
//     skewness, kurtosis, covariance matrix and per-holding weights from the
//     total invested value.
//   - Building: validation and assembly of a Portfolio from a metadata table
//     paired with either a price table (resolving loosely-labeled columns
//     through an ordered fallback strategy) or query parameters for the
//     market-data client in the eodhd subpackage.
//   - Optimisation: forwarding the merged price table and current weights to
//     the Monte Carlo and efficient-frontier routines in the optimise
//     subpackage.
//
// The statistical kernels live in the quant subpackage and are consumed as
// pure functions. This package serves as the foundational logic for the `fq`
// command-line tool.
package finquant
