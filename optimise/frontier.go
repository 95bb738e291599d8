package optimise

import (
	"fmt"

	"github.com/Magic-Academy/FinQuant/timeseries"
	"gonum.org/v1/gonum/optimize"
)

// Numerical efficient-frontier solvers. Constraints are handled with a
// penalty method: candidate weights are projected into [0, 1] and normalized
// onto the simplex before scoring, so the objective is evaluated at exactly
// the point the solver reports. A mild penalty on the raw sum's drift from 1
// keeps the search away from the degenerate all-zero region.

const sumPenalty = 100.0

// MinVolatility numerically searches for the weight vector with the lowest
// annualized volatility.
func MinVolatility(prices *timeseries.Table, total float64, cfg Config) (*Result, error) {
	return solve(prices, total, cfg, "min volatility", func(p *problem, w []float64) float64 {
		_, vol, _ := p.score(w)
		return vol
	})
}

// MaxSharpe numerically searches for the weight vector with the highest
// Sharpe ratio.
func MaxSharpe(prices *timeseries.Table, total float64, cfg Config) (*Result, error) {
	return solve(prices, total, cfg, "max Sharpe ratio", func(p *problem, w []float64) float64 {
		_, _, sharpe := p.score(w)
		return -sharpe
	})
}

func solve(prices *timeseries.Table, total float64, cfg Config, strategy string, objective func(*problem, []float64) float64) (*Result, error) {
	cfg = cfg.withDefaults()
	p, err := newProblem(prices, total, cfg)
	if err != nil {
		return nil, err
	}
	n := len(p.labels)

	prob := optimize.Problem{
		Func: func(x []float64) float64 {
			w := projectToBounds(x)
			sum := 0.0
			for _, v := range w {
				sum += v
			}
			normalize(w)
			return objective(p, w) + sumPenalty*(sum-1)*(sum-1)
		},
	}

	res, err := optimize.Minimize(prob, equalWeights(n), nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("optimise: %s solver failed: %w", strategy, err)
	}

	weights := projectToBounds(res.X)
	normalize(weights)
	result := p.result(strategy, weights)
	return &result, nil
}

// projectToBounds clamps each weight into [0, 1].
func projectToBounds(x []float64) []float64 {
	w := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v < 0:
			w[i] = 0
		case v > 1:
			w[i] = 1
		default:
			w[i] = v
		}
	}
	return w
}

func normalize(w []float64) {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum == 0 {
		copy(w, equalWeights(len(w)))
		return
	}
	for i := range w {
		w[i] /= sum
	}
}
