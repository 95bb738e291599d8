package finquant

import (
	"strings"

	"github.com/Magic-Academy/FinQuant/timeseries"
)

// Fetcher retrieves historical prices for a set of instrument names from an
// external market-data source. A zero from/to date leaves that bound open.
//
// Implementations label the returned columns "<normalized-name> - <column>"
// (see NormalizeTicker) and report connectivity or empty-payload failures
// with an error matching ErrDataSourceUnavailable. The call is blocking and
// carries no built-in timeout or retry; resilience is the caller's concern.
type Fetcher interface {
	FetchPrices(names []string, from, to timeseries.Date) (*timeseries.Table, error)
}

// DefaultExchange is the exchange suffix assumed when an instrument name
// carries none, as required by the market-data source's naming convention.
const DefaultExchange = "US"

// NormalizeTicker makes sure an instrument name follows the data source's
// "SYMBOL.EXCHANGE" convention, appending the default exchange when missing.
//
// Example: "GOOG" becomes "GOOG.US", while "SAP.XETRA" is left untouched.
func NormalizeTicker(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + "." + DefaultExchange
}
