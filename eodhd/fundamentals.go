package eodhd

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Fundamentals holds the descriptive fields of an instrument that are useful
// as holding attributes.
type Fundamentals struct {
	Name     string
	Currency string
	Sector   string
	Industry string
}

/*
	https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	{
	    "General": {
	        "Code": "AAPL",
	        "Name": "Apple Inc",
	        "CurrencyCode": "USD",
	        "Sector": "Technology",
	        "Industry": "Consumer Electronics",
	        ...
*/

// Fundamentals retrieves the general section of the EODHD fundamentals payload
// for a ticker. Missing fields are left empty rather than reported as errors;
// the payload varies a lot between instrument types.
func (c *Client) Fundamentals(ticker string) (Fundamentals, error) {
	addr := fmt.Sprintf("%s/api/fundamentals/%s?api_token=%s&fmt=json", baseURL, url.PathEscape(ticker), url.QueryEscape(c.apiKey))

	var jobj any
	if err := jwget(newDailyCachingClient(), addr, &jobj); err != nil {
		return Fundamentals{}, fmt.Errorf("error in wget fundamentals %q: %w", ticker, err)
	}

	return Fundamentals{
		Name:     jstring(jobj, "$.General.Name"),
		Currency: jstring(jobj, "$.General.CurrencyCode"),
		Sector:   jstring(jobj, "$.General.Sector"),
		Industry: jstring(jobj, "$.General.Industry"),
	}, nil
}

// jstring extracts a string at a jsonpath, or "" when absent.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
