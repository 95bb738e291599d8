// Package optimise searches for portfolio weight allocations that minimise
// volatility or maximise the Sharpe ratio, either by Monte Carlo simulation
// over random weight vectors or by a numerical efficient-frontier solver.
//
// The package is a consumer of merged price tables; it knows nothing about
// holdings or metadata. The portfolio entity forwards its price table, its
// current weights as search seed and its total investment, and treats the
// result as opaque.
package optimise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Magic-Academy/FinQuant/quant"
	"github.com/Magic-Academy/FinQuant/timeseries"
	"gonum.org/v1/gonum/mat"
)

// Config carries the optimisation parameters. The zero value is completed by
// sensible defaults (10000 trials, 0.005 risk-free rate, 252 trading days).
type Config struct {
	NumTrials    int     // number of random portfolios in a Monte Carlo run
	RiskFreeRate float64 // risk-free rate for the Sharpe ratio
	Freq         int     // trading days per year, for annualisation
	Seed         int64   // non-zero seeds the random source, for reproducible runs
}

func (c Config) withDefaults() Config {
	if c.NumTrials <= 0 {
		c.NumTrials = 10000
	}
	if c.RiskFreeRate == 0 {
		c.RiskFreeRate = 0.005
	}
	if c.Freq <= 0 {
		c.Freq = quant.TradingDays
	}
	return c
}

// Allocation is one instrument's share of an optimised portfolio.
type Allocation struct {
	Label  string
	Weight float64
	Amount float64 // Weight times the total investment
}

// Result describes one optimised weight vector and its achieved statistics.
type Result struct {
	Strategy       string
	Allocations    []Allocation
	ExpectedReturn float64
	Volatility     float64
	Sharpe         float64
}

// Weights returns the weight vector of the result, in label order.
func (r *Result) Weights() []float64 {
	w := make([]float64, len(r.Allocations))
	for i, a := range r.Allocations {
		w[i] = a.Weight
	}
	return w
}

// MonteCarloResult aggregates the outcome of a Monte Carlo search.
type MonteCarloResult struct {
	MaxSharpe     Result
	MinVolatility Result
	Initial       Result // statistics of the seed weights, for comparison
	Trials        int
}

// problem precomputes the inputs every candidate weight vector is scored
// against: annualized mean returns and the daily-return covariance matrix.
type problem struct {
	labels []string
	mu     []float64 // annualized mean returns per column
	cov    *mat.SymDense
	freq   int
	rate   float64
	total  float64
}

func newProblem(prices *timeseries.Table, total float64, cfg Config) (*problem, error) {
	if prices == nil || prices.NumColumns() == 0 {
		return nil, fmt.Errorf("optimise: price table has no columns")
	}
	if total <= 0 {
		return nil, fmt.Errorf("optimise: total investment must be positive, got %g", total)
	}
	return &problem{
		labels: prices.Labels(),
		mu:     quant.HistoricalMeanReturn(prices, cfg.Freq),
		cov:    quant.Covariance(prices),
		freq:   cfg.Freq,
		rate:   cfg.RiskFreeRate,
		total:  total,
	}, nil
}

// score computes the annualized return, volatility and Sharpe ratio of a
// weight vector.
func (p *problem) score(weights []float64) (ret, vol, sharpe float64) {
	ret = quant.WeightedMean(p.mu, weights)
	vol = quant.WeightedStd(p.cov, weights) * math.Sqrt(float64(p.freq))
	sharpe = quant.SharpeRatio(ret, vol, p.rate)
	return ret, vol, sharpe
}

func (p *problem) result(strategy string, weights []float64) Result {
	ret, vol, sharpe := p.score(weights)
	allocations := make([]Allocation, len(weights))
	for i, w := range weights {
		allocations[i] = Allocation{Label: p.labels[i], Weight: w, Amount: w * p.total}
	}
	return Result{
		Strategy:       strategy,
		Allocations:    allocations,
		ExpectedReturn: ret,
		Volatility:     vol,
		Sharpe:         sharpe,
	}
}

// MonteCarlo simulates cfg.NumTrials random weight vectors over the columns
// of the price table and reports the best portfolios found, alongside the
// statistics of the initial weights. A nil initialWeights seeds the search
// with an equal-weighted portfolio.
func MonteCarlo(prices *timeseries.Table, total float64, initialWeights []float64, cfg Config) (*MonteCarloResult, error) {
	cfg = cfg.withDefaults()
	p, err := newProblem(prices, total, cfg)
	if err != nil {
		return nil, err
	}
	n := len(p.labels)
	if initialWeights == nil {
		initialWeights = equalWeights(n)
	}
	if len(initialWeights) != n {
		return nil, fmt.Errorf("optimise: %d initial weights for %d price columns", len(initialWeights), n)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	best := &MonteCarloResult{
		Initial:       p.result("initial weights", initialWeights),
		MaxSharpe:     p.result("max Sharpe ratio", initialWeights),
		MinVolatility: p.result("min volatility", initialWeights),
		Trials:        cfg.NumTrials,
	}
	weights := make([]float64, n)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		randomWeights(rng, weights)
		_, vol, sharpe := p.score(weights)
		if sharpe > best.MaxSharpe.Sharpe {
			best.MaxSharpe = p.result("max Sharpe ratio", append([]float64{}, weights...))
		}
		if vol < best.MinVolatility.Volatility {
			best.MinVolatility = p.result("min volatility", append([]float64{}, weights...))
		}
	}
	return best, nil
}

// randomWeights fills dst with a random weight vector summing to 1.
func randomWeights(rng *rand.Rand, dst []float64) {
	sum := 0.0
	for i := range dst {
		dst[i] = rng.Float64()
		sum += dst[i]
	}
	for i := range dst {
		dst[i] /= sum
	}
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}
