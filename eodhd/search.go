package eodhd

import (
	"fmt"
	"net/url"

	"github.com/Magic-Academy/FinQuant/timeseries"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string          `json:"Code"`
	Exchange          string          `json:"Exchange"`
	Name              string          `json:"Name"`
	Type              string          `json:"Type"`
	Country           string          `json:"Country"`
	Currency          string          `json:"Currency"`
	ISIN              string          `json:"ISIN"`
	PreviousClose     float64         `json:"previousClose"`
	PreviousCloseDate timeseries.Date `json:"previousCloseDate"`
}

// Ticker returns the "SYMBOL.EXCHANGE" form accepted by FetchPrices.
func (r SearchResult) Ticker() string {
	return r.Code + "." + r.Exchange
}

// Search searches for securities via EOD Historical Data API.
func (c *Client) Search(searchTerm string) ([]SearchResult, error) {
	addr := fmt.Sprintf("%s/api/search/%s?api_token=%s&fmt=json", baseURL, url.PathEscape(searchTerm), url.QueryEscape(c.apiKey))

	var results []SearchResult
	if err := jwget(newDailyCachingClient(), addr, &results); err != nil {
		return nil, err
	}
	return results, nil
}
