package quant

import (
	"math"

	"github.com/Magic-Academy/FinQuant/timeseries"
	"gonum.org/v1/gonum/stat"
)

// This file holds the return-series transformations of raw price tables.
// Each transformation preserves column labels; daily transforms drop the
// first row of the index since the first observation has no predecessor.

// DailyReturns returns the daily percentage change of each column:
// (price_t - price_{t-1}) / price_{t-1}.
func DailyReturns(prices *timeseries.Table) *timeseries.Table {
	return dailyTransform(prices, func(prev, cur float64) float64 {
		return cur/prev - 1
	})
}

// DailyLogReturns returns the daily logarithmic return of each column:
// ln(price_t / price_{t-1}).
func DailyLogReturns(prices *timeseries.Table) *timeseries.Table {
	return dailyTransform(prices, func(prev, cur float64) float64 {
		return math.Log(cur / prev)
	})
}

func dailyTransform(prices *timeseries.Table, f func(prev, cur float64) float64) *timeseries.Table {
	days := prices.Dates()
	if len(days) > 0 {
		days = days[1:]
	}
	out := timeseries.NewTable(days)
	for _, label := range prices.Labels() {
		col, _ := prices.Column(label)
		returns := make([]float64, 0, len(days))
		for i := 1; i < len(col); i++ {
			returns = append(returns, f(col[i-1], col[i]))
		}
		out.AddColumn(label, returns)
	}
	return out
}

// CumulativeReturns returns the return of each column relative to its first
// value: (price_t - price_0) / price_0. The index is preserved in full.
func CumulativeReturns(prices *timeseries.Table) *timeseries.Table {
	out := timeseries.NewTable(prices.Dates())
	for _, label := range prices.Labels() {
		col, _ := prices.Column(label)
		returns := make([]float64, len(col))
		if len(col) > 0 {
			base := col[0]
			for i, v := range col {
				returns[i] = (v - base) / base
			}
		}
		out.AddColumn(label, returns)
	}
	return out
}

// HistoricalMeanReturn returns the annualized mean daily return of each
// column, in label order, scaled by the given trading-day frequency.
func HistoricalMeanReturn(prices *timeseries.Table, freq int) []float64 {
	returns := DailyReturns(prices)
	means := make([]float64, 0, returns.NumColumns())
	for _, label := range returns.Labels() {
		col, _ := returns.Column(label)
		means = append(means, stat.Mean(col, nil)*float64(freq))
	}
	return means
}
