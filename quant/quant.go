// Package quant provides the pure statistical kernels consumed by the
// portfolio entity model: return-series transformations, weighted statistics,
// the Sharpe ratio and the sample covariance of daily returns.
//
// All functions are free of side effects and safe to call repeatedly.
package quant

import (
	"math"

	"github.com/Magic-Academy/FinQuant/timeseries"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the default annualisation frequency, the number of trading
// days in a year.
const TradingDays = 252

// WeightedMean returns the mean of values weighted by weights.
// Values and weights must have the same length.
func WeightedMean(values, weights []float64) float64 {
	return stat.Mean(values, weights)
}

// WeightedStd returns the weighted standard deviation sqrt(wᵀ Σ w) of a
// portfolio with the given covariance matrix of daily returns and weights.
func WeightedStd(cov *mat.SymDense, weights []float64) float64 {
	w := mat.NewVecDense(len(weights), weights)
	var sw mat.VecDense
	sw.MulVec(cov, w)
	return math.Sqrt(mat.Dot(w, &sw))
}

// SharpeRatio returns (expectedReturn - riskFreeRate) / volatility.
//
// When volatility is exactly zero the ratio is undefined; instead of raising
// a numeric error this returns a signed-infinity sentinel carrying the sign
// of the excess return, or 0 when the excess return is itself zero.
func SharpeRatio(expectedReturn, volatility, riskFreeRate float64) float64 {
	excess := expectedReturn - riskFreeRate
	if volatility == 0 {
		if excess == 0 {
			return 0
		}
		return math.Inf(int(math.Copysign(1, excess)))
	}
	return excess / volatility
}

// Covariance returns the sample covariance matrix of the daily returns of the
// given price table. The matrix is symmetric and positive-semidefinite by
// construction, with one row/column per table column, in label order.
func Covariance(prices *timeseries.Table) *mat.SymDense {
	returns := DailyReturns(prices)
	labels := returns.Labels()
	n := len(labels)
	series := make([][]float64, n)
	for i, label := range labels {
		series[i], _ = returns.Column(label)
	}
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, stat.Covariance(series[i], series[j], nil))
		}
	}
	return cov
}

// Std returns the sample standard deviation of xs.
func Std(xs []float64) float64 {
	return stat.StdDev(xs, nil)
}

// Skew returns the sample skewness of xs.
func Skew(xs []float64) float64 {
	return stat.Skew(xs, nil)
}

// Kurtosis returns the sample excess kurtosis (Fisher) of xs.
func Kurtosis(xs []float64) float64 {
	return stat.ExKurtosis(xs, nil)
}
