package finquant

import (
	"fmt"
	"math"

	"github.com/Magic-Academy/FinQuant/optimise"
	"github.com/Magic-Academy/FinQuant/quant"
	"github.com/Magic-Academy/FinQuant/timeseries"
	"gonum.org/v1/gonum/mat"
)

// DefaultRiskFreeRate is the risk-free rate used when none is specified.
const DefaultRiskFreeRate = 0.005

// Portfolio is an ordered collection of holdings together with a merged price
// table and the statistics derived from them. The zero state returned by
// NewPortfolio is a valid empty portfolio; holdings are added one at a time
// through AddHolding, which updates the entire state atomically.
type Portfolio struct {
	holdings map[string]*Holding
	order    []string // insertion order, for display purposes only
	metadata []Metadata
	prices   *timeseries.Table
	primary  []string // one representative price column per holding, in order
	total    Amount

	expectedReturn float64
	volatility     float64
	sharpe         float64
	skew           []float64
	kurtosis       []float64
}

// NewPortfolio returns a valid empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]*Holding)}
}

// AddHolding inserts a holding into the portfolio and recomputes the merged
// price table, the total investment and all derived statistics. The update is
// atomic: on any error the portfolio is left exactly as it was.
//
// The date index established by the first-added holding is authoritative.
// Subsequent histories must cover the same number of trading days and are
// attached positionally against that index; callers supplying heterogeneous
// calendars must pre-align them.
func (p *Portfolio) AddHolding(h *Holding) error {
	if _, ok := p.holdings[h.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, h.Name())
	}

	// Stage the merged price table before touching any field.
	var prices *timeseries.Table
	incoming := h.Prices()
	if p.prices == nil {
		prices = incoming
	} else {
		if incoming.Len() != p.prices.Len() {
			return fmt.Errorf("%w: holding %q has %d dates, portfolio index has %d",
				ErrDateAlignment, h.Name(), incoming.Len(), p.prices.Len())
		}
		prices = p.prices.Clone()
		for _, label := range incoming.Labels() {
			col, _ := incoming.Column(label)
			if err := prices.AddColumn(label, col); err != nil {
				return fmt.Errorf("%w: merging holding %q: %v", ErrDuplicateName, h.Name(), err)
			}
		}
	}

	metadata := append(append([]Metadata{}, p.metadata...), h.Metadata())
	total := Amount{}
	for _, m := range metadata {
		total = total.Add(m.FMV)
	}

	// Derived statistics from the fully staged state. A holding may carry
	// several price columns; the weighted aggregation pairs each holding's
	// weight with its representative (first) column.
	primary := append(append([]string{}, p.primary...), incoming.Labels()[0])
	series, err := prices.Select(primary...)
	if err != nil {
		return fmt.Errorf("%w: holding %q: %v", ErrValidation, h.Name(), err)
	}
	weights := weightsOf(metadata, total)
	expectedReturn := quant.WeightedMean(quant.HistoricalMeanReturn(series, quant.TradingDays), weights)
	volatility := quant.WeightedStd(quant.Covariance(series), weights) * math.Sqrt(quant.TradingDays)
	sharpe := quant.SharpeRatio(expectedReturn, volatility, DefaultRiskFreeRate)
	skew, kurtosis := perColumnShape(series)

	// Commit.
	p.holdings[h.Name()] = h
	p.order = append(p.order, h.Name())
	p.metadata = metadata
	p.prices = prices
	p.primary = primary
	p.total = total
	p.expectedReturn = expectedReturn
	p.volatility = volatility
	p.sharpe = sharpe
	p.skew = skew
	p.kurtosis = kurtosis
	return nil
}

func weightsOf(metadata []Metadata, total Amount) []float64 {
	weights := make([]float64, len(metadata))
	for i, m := range metadata {
		weights[i] = m.FMV.Div(total)
	}
	return weights
}

func perColumnShape(prices *timeseries.Table) (skew, kurtosis []float64) {
	for _, label := range prices.Labels() {
		col, _ := prices.Column(label)
		skew = append(skew, quant.Skew(col))
		kurtosis = append(kurtosis, quant.Kurtosis(col))
	}
	return skew, kurtosis
}

// Holding returns the holding with the given name.
func (p *Portfolio) Holding(name string) (*Holding, bool) {
	h, ok := p.holdings[name]
	return h, ok
}

// Names returns the holding names in insertion order.
func (p *Portfolio) Names() []string { return append([]string{}, p.order...) }

// Metadata returns the accumulated metadata rows, row order = insertion order.
func (p *Portfolio) Metadata() []Metadata { return append([]Metadata{}, p.metadata...) }

// Prices returns a copy of the merged price table, or nil when empty.
func (p *Portfolio) Prices() *timeseries.Table {
	if p.prices == nil {
		return nil
	}
	return p.prices.Clone()
}

// TotalInvestment returns the sum of FMV over all held metadata rows.
func (p *Portfolio) TotalInvestment() Amount { return p.total }

// SetTotalInvestment overrides the total investment. Non-positive values are
// rejected; the per-holding FMV rows are left untouched.
func (p *Portfolio) SetTotalInvestment(total Amount) error {
	if !total.IsPositive() {
		return fmt.Errorf("%w: total investment must be positive, got %s", ErrValidation, total)
	}
	p.total = total
	return nil
}

// Weights returns FMV/totalInvestment per holding, in metadata row order.
func (p *Portfolio) Weights() ([]float64, error) {
	if len(p.metadata) == 0 {
		return nil, fmt.Errorf("%w: no weights to compute", ErrUninitialized)
	}
	return weightsOf(p.metadata, p.total), nil
}

// primarySeries returns the merged table restricted to each holding's
// representative price column, in holding order.
func (p *Portfolio) primarySeries() (*timeseries.Table, error) {
	if p.prices == nil {
		return nil, fmt.Errorf("%w: no price history", ErrUninitialized)
	}
	return p.prices.Select(p.primary...)
}

// ExpectedReturn returns the weighted mean of the holdings' historical mean
// returns at the given trading-day frequency.
func (p *Portfolio) ExpectedReturn(freq int) (float64, error) {
	weights, err := p.Weights()
	if err != nil {
		return 0, err
	}
	series, err := p.primarySeries()
	if err != nil {
		return 0, err
	}
	return quant.WeightedMean(quant.HistoricalMeanReturn(series, freq), weights), nil
}

// Volatility returns the weighted portfolio standard deviation derived from
// the covariance matrix and the weights, annualized by sqrt(freq).
func (p *Portfolio) Volatility(freq int) (float64, error) {
	weights, err := p.Weights()
	if err != nil {
		return 0, err
	}
	cov, err := p.Cov()
	if err != nil {
		return 0, err
	}
	return quant.WeightedStd(cov, weights) * math.Sqrt(float64(freq)), nil
}

// Cov returns the sample covariance matrix of the daily returns of the
// holdings' representative price columns, one row/column per holding. It is
// symmetric and positive-semidefinite by construction.
func (p *Portfolio) Cov() (*mat.SymDense, error) {
	series, err := p.primarySeries()
	if err != nil {
		return nil, err
	}
	return quant.Covariance(series), nil
}

// Sharpe returns (expectedReturn - riskFreeRate) / volatility using the
// cached statistics. A zero volatility yields the signed-infinity sentinel
// documented on quant.SharpeRatio.
func (p *Portfolio) Sharpe(riskFreeRate float64) (float64, error) {
	if len(p.metadata) == 0 {
		return 0, fmt.Errorf("%w: no Sharpe ratio to compute", ErrUninitialized)
	}
	return quant.SharpeRatio(p.expectedReturn, p.volatility, riskFreeRate), nil
}

// CachedExpectedReturn returns the expected return computed by the last
// AddHolding at the default frequency.
func (p *Portfolio) CachedExpectedReturn() float64 { return p.expectedReturn }

// CachedVolatility returns the volatility computed by the last AddHolding at
// the default frequency.
func (p *Portfolio) CachedVolatility() float64 { return p.volatility }

// CachedSharpe returns the Sharpe ratio computed by the last AddHolding at
// the default frequency and risk-free rate.
func (p *Portfolio) CachedSharpe() float64 { return p.sharpe }

// Skew returns the skewness of each holding's representative price column,
// in holding order.
func (p *Portfolio) Skew() []float64 { return append([]float64{}, p.skew...) }

// Kurtosis returns the excess kurtosis of each holding's representative price
// column, in holding order.
func (p *Portfolio) Kurtosis() []float64 { return append([]float64{}, p.kurtosis...) }

// DailyReturns returns the daily percentage change of all price columns.
func (p *Portfolio) DailyReturns() (*timeseries.Table, error) {
	if p.prices == nil {
		return nil, fmt.Errorf("%w: no returns to compute", ErrUninitialized)
	}
	return quant.DailyReturns(p.prices), nil
}

// DailyLogReturns returns the daily log returns of all price columns.
func (p *Portfolio) DailyLogReturns() (*timeseries.Table, error) {
	if p.prices == nil {
		return nil, fmt.Errorf("%w: no returns to compute", ErrUninitialized)
	}
	return quant.DailyLogReturns(p.prices), nil
}

// CumulativeReturns returns the cumulative returns of all price columns.
func (p *Portfolio) CumulativeReturns() (*timeseries.Table, error) {
	if p.prices == nil {
		return nil, fmt.Errorf("%w: no returns to compute", ErrUninitialized)
	}
	return quant.CumulativeReturns(p.prices), nil
}

// MeanReturns returns the annualized historical mean return per price column.
func (p *Portfolio) MeanReturns(freq int) ([]float64, error) {
	if p.prices == nil {
		return nil, fmt.Errorf("%w: no returns to compute", ErrUninitialized)
	}
	return quant.HistoricalMeanReturn(p.prices, freq), nil
}

// Optimise forwards the holdings' representative price series, the current
// weights as search seed and the total investment to the external optimiser
// and returns its result verbatim. A nil override uses the portfolio's own
// total investment.
func (p *Portfolio) Optimise(override *Amount, cfg optimise.Config) (*optimise.MonteCarloResult, error) {
	weights, err := p.Weights()
	if err != nil {
		return nil, err
	}
	total := p.total
	if override != nil {
		if !override.IsPositive() {
			return nil, fmt.Errorf("%w: total investment must be positive, got %s", ErrValidation, *override)
		}
		total = *override
	}
	series, err := p.primarySeries()
	if err != nil {
		return nil, err
	}
	return optimise.MonteCarlo(series, total.AsFloat(), weights, cfg)
}

func (p *Portfolio) String() string {
	return "Contains information about a portfolio."
}
