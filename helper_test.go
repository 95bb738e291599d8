package finquant

import (
	"math"
	"testing"

	"github.com/Magic-Academy/FinQuant/optimise"
	"github.com/Magic-Academy/FinQuant/timeseries"
)

const tolerance = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < tolerance }

// tradingDays returns n consecutive dates starting 2024-01-02.
func tradingDays(n int) []timeseries.Date {
	days := make([]timeseries.Date, n)
	for i := range days {
		days[i] = timeseries.NewDate(2024, 1, 2+i)
	}
	return days
}

// priceColumn builds a one-column price table labeled with the bare name.
func priceColumn(t *testing.T, name string, prices []float64) *timeseries.Table {
	t.Helper()
	table := timeseries.NewTable(tradingDays(len(prices)))
	if err := table.AddColumn(name, prices); err != nil {
		t.Fatal(err)
	}
	return table
}

// newTestHolding builds a holding over the given prices with an FMV in USD.
func newTestHolding(t *testing.T, name string, fmv float64, prices []float64) *Holding {
	t.Helper()
	h, err := NewHolding(Metadata{Name: name, FMV: M(fmv, "USD")}, priceColumn(t, name, prices))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

var (
	risingPrices  = []float64{100, 101, 102, 101, 103, 104, 103, 105}
	fallingPrices = []float64{50, 49.5, 49, 49.5, 48, 47.5, 48, 47}
)

// optimiseTestConfig keeps optimisation runs small and reproducible.
func optimiseTestConfig() optimise.Config {
	return optimise.Config{NumTrials: 200, Seed: 1}
}
