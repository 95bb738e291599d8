package eodhd

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/timeseries"
)

// fakeEODHD serves canned /api/eod payloads and redirects the package at
// itself for the duration of the test.
func fakeEODHD(t *testing.T, payloads map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := payloads[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	prev := baseURL
	baseURL = srv.URL
	t.Cleanup(func() { baseURL = prev; srv.Close() })
	return srv
}

func TestFetchPrices(t *testing.T) {
	fakeEODHD(t, map[string]string{
		"/api/eod/GOOG.US": `[
			{"date":"2024-02-12","adjusted_close":100.0},
			{"date":"2024-02-13","adjusted_close":101.5},
			{"date":"2024-02-14","adjusted_close":103.0}
		]`,
		"/api/eod/AMZN.US": `[
			{"date":"2024-02-13","adjusted_close":50.0},
			{"date":"2024-02-14","adjusted_close":51.0},
			{"date":"2024-02-15","adjusted_close":52.0}
		]`,
	})

	c := NewClient("demo")
	table, err := c.FetchPrices([]string{"GOOG", "AMZN"}, timeseries.Date{}, timeseries.Date{})
	if err != nil {
		t.Fatalf("FetchPrices() unexpected error = %v", err)
	}

	// Only the two days both instruments traded survive.
	if got := table.Len(); got != 2 {
		t.Fatalf("FetchPrices() table length = %d, want 2", got)
	}
	wantLabels := []string{"GOOG.US - Adj. Close", "AMZN.US - Adj. Close"}
	gotLabels := table.Labels()
	for i, want := range wantLabels {
		if gotLabels[i] != want {
			t.Errorf("FetchPrices() label[%d] = %q, want %q", i, gotLabels[i], want)
		}
	}
	col, ok := table.Column("GOOG.US - Adj. Close")
	if !ok {
		t.Fatal("FetchPrices() missing GOOG.US column")
	}
	if col[0] != 101.5 || col[1] != 103.0 {
		t.Errorf("FetchPrices() GOOG column = %v, want [101.5 103]", col)
	}
}

func TestFetchPrices_unknownTicker(t *testing.T) {
	fakeEODHD(t, map[string]string{})

	c := NewClient("demo")
	_, err := c.FetchPrices([]string{"NOPE"}, timeseries.Date{}, timeseries.Date{})
	if !errors.Is(err, finquant.ErrDataSourceUnavailable) {
		t.Errorf("FetchPrices() error = %v, want ErrDataSourceUnavailable", err)
	}
}

func TestFetchPrices_noNames(t *testing.T) {
	c := NewClient("demo")
	if _, err := c.FetchPrices(nil, timeseries.Date{}, timeseries.Date{}); !errors.Is(err, finquant.ErrDataSourceUnavailable) {
		t.Errorf("FetchPrices() error = %v, want ErrDataSourceUnavailable", err)
	}
}

func TestSearch(t *testing.T) {
	fakeEODHD(t, map[string]string{
		"/api/search/apple": `[
			{"Code":"AAPL","Exchange":"US","Name":"Apple Inc","Type":"Common Stock","Currency":"USD","previousClose":230.1,"previousCloseDate":"2024-02-14"}
		]`,
	})

	c := NewClient("demo")
	results, err := c.Search("apple")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Search() returned %d results, want 1", len(results))
	}
	if got := results[0].Ticker(); got != "AAPL.US" {
		t.Errorf("Ticker() = %q, want %q", got, "AAPL.US")
	}
}
