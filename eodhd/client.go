// Package eodhd implements the market-data client over the EOD Historical
// Data API (https://eodhd.com). It retrieves end-of-day price history for a
// set of instruments and assembles it into a single price table labeled with
// the "<TICKER.EXCHANGE> - Adj. Close" convention consumed by the portfolio
// builder.
package eodhd

import (
	"fmt"
	"net/url"
	"sort"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/timeseries"
	"github.com/shopspring/decimal"
)

// DataColumn is the label suffix of the price series returned by the client.
const DataColumn = "Adj. Close"

// Client queries the EODHD API.
type Client struct {
	apiKey string
}

// NewClient returns a client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// Client implements the market-data interface of the portfolio builder.
var _ finquant.Fetcher = (*Client)(nil)

// FetchPrices retrieves the adjusted close history of the named instruments
// and returns them as one table over the trading days common to all of them.
// Names are normalized to the "SYMBOL.EXCHANGE" convention first. A zero
// from/to date leaves that bound open.
//
// Connectivity failures and empty payloads are reported as
// finquant.ErrDataSourceUnavailable; there is no retry.
func (c *Client) FetchPrices(names []string, from, to timeseries.Date) (*timeseries.Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no instrument names", finquant.ErrDataSourceUnavailable)
	}

	tickers := make([]string, len(names))
	histories := make([]map[timeseries.Date]float64, len(names))
	for i, name := range names {
		ticker := finquant.NormalizeTicker(name)
		prices, err := c.fetchEOD(ticker, from, to)
		if err != nil {
			return nil, fmt.Errorf("%w: fetching %q: %v", finquant.ErrDataSourceUnavailable, ticker, err)
		}
		if len(prices) == 0 {
			return nil, fmt.Errorf("%w: no data for %q", finquant.ErrDataSourceUnavailable, ticker)
		}
		tickers[i] = ticker
		histories[i] = prices
	}

	// Restrict to the trading days every instrument covers so that the table
	// shares one consistent index.
	days := commonDays(histories)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no common trading days across %v", finquant.ErrDataSourceUnavailable, names)
	}

	table := timeseries.NewTable(days)
	for i, ticker := range tickers {
		col := make([]float64, len(days))
		for j, day := range days {
			col[j] = histories[i][day]
		}
		if err := table.AddColumn(ticker+" - "+DataColumn, col); err != nil {
			return nil, fmt.Errorf("%w: %v", finquant.ErrDataSourceUnavailable, err)
		}
	}
	return table, nil
}

// fetchEOD retrieves the end-of-day history of a single EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func (c *Client) fetchEOD(ticker string, from, to timeseries.Date) (map[timeseries.Date]float64, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s", baseURL, url.PathEscape(ticker), url.QueryEscape(c.apiKey))
	if !from.IsZero() {
		addr += "&from=" + from.String()
	}
	if !to.IsZero() {
		addr += "&to=" + to.String()
	}

	type info struct {
		Date          timeseries.Date `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	content := make([]info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}

	prices := make(map[timeseries.Date]float64, len(content))
	for _, i := range content {
		prices[i.Date] = i.AdjustedClose.InexactFloat64()
	}
	return prices, nil
}

// commonDays returns, chronologically sorted, the days present in every
// history.
func commonDays(histories []map[timeseries.Date]float64) []timeseries.Date {
	var days []timeseries.Date
next:
	for day := range histories[0] {
		for _, h := range histories[1:] {
			if _, ok := h[day]; !ok {
				continue next
			}
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
