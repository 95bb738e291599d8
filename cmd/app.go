// Package cmd implements the CLI application to inspect and optimise an
// investment portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/timeseries"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&propertiesCmd{}, "portfolio")
	c.Register(&optimiseCmd{}, "portfolio")

	c.Register(&fetchCmd{}, "market data")
	c.Register(&searchCmd{}, "market data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var metadataFile = flag.String("m", "holdings.csv", "Path to the holdings metadata file (CSV: Name,FMV[,Currency[,attrs...]])")
var pricesFile = flag.String("p", "prices.csv", "Path to the price history file (CSV: Date column plus one column per instrument)")
var dataColumns = flag.String("c", "", "Comma-separated data columns to extract from the prices file (default \"Adj. Close\")")

// LoadPortfolio builds a portfolio from the app metadata and prices files.
func LoadPortfolio() (*finquant.Portfolio, error) {
	meta, err := LoadMetadata(*metadataFile)
	if err != nil {
		return nil, err
	}
	prices, err := LoadPrices(*pricesFile)
	if err != nil {
		return nil, err
	}
	opts := []finquant.BuildOption{finquant.WithTable(prices)}
	if *dataColumns != "" {
		opts = append(opts, finquant.WithDataColumns(strings.Split(*dataColumns, ",")...))
	}
	return finquant.Build(meta, opts...)
}

// fail prints an error and returns the matching exit status, to keep
// Execute bodies short.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// parseDateFlag parses an optional date flag, where empty means the zero date.
func parseDateFlag(s string) (timeseries.Date, error) {
	if s == "" {
		return timeseries.Date{}, nil
	}
	return timeseries.ParseDate(s)
}
