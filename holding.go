package finquant

import (
	"fmt"
	"math"

	"github.com/Magic-Academy/FinQuant/quant"
	"github.com/Magic-Academy/FinQuant/timeseries"
)

// Metadata is the single-row record describing one instrument: its unique
// name, the fair market value invested in it, and arbitrary free-form
// attributes (year, strategy, currency, ...).
type Metadata struct {
	Name  string
	FMV   Amount
	Attrs map[string]string
}

// Validate checks the required fields of the metadata row.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: metadata row has no name", ErrValidation)
	}
	if !m.FMV.IsPositive() {
		return fmt.Errorf("%w: FMV of %q must be positive, got %s", ErrValidation, m.Name, m.FMV)
	}
	return nil
}

// Holding wraps one instrument's metadata and price history. Its four derived
// statistics are computed once at construction and frozen thereafter; a
// holding is never mutated in place, only replaced.
type Holding struct {
	meta   Metadata
	prices *timeseries.Table

	expectedReturn float64
	volatility     float64
	skew           float64
	kurtosis       float64
}

// NewHolding builds an immutable Holding from one metadata row and its price
// history. It requires a non-empty name, a positive FMV, and at least one
// price column, and computes the derived statistics at the default
// trading-day frequency.
func NewHolding(meta Metadata, prices *timeseries.Table) (*Holding, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if prices == nil || prices.NumColumns() == 0 {
		return nil, fmt.Errorf("%w: holding %q has no price column", ErrValidation, meta.Name)
	}
	h := &Holding{meta: meta, prices: prices.Clone()}
	h.expectedReturn = h.ExpectedReturnAt(quant.TradingDays)
	h.volatility = h.VolatilityAt(quant.TradingDays)
	first, _ := prices.Column(prices.Labels()[0])
	h.skew = quant.Skew(first)
	h.kurtosis = quant.Kurtosis(first)
	return h, nil
}

// Name returns the unique instrument name of the holding.
func (h *Holding) Name() string { return h.meta.Name }

// Metadata returns the metadata row the holding was built from.
func (h *Holding) Metadata() Metadata { return h.meta }

// Prices returns a copy of the holding's price history.
func (h *Holding) Prices() *timeseries.Table { return h.prices.Clone() }

// ExpectedReturn returns the annualized historical mean return cached at
// construction time.
func (h *Holding) ExpectedReturn() float64 { return h.expectedReturn }

// Volatility returns the annualized standard deviation of daily returns
// cached at construction time.
func (h *Holding) Volatility() float64 { return h.volatility }

// Skew returns the skewness of the price series cached at construction time.
func (h *Holding) Skew() float64 { return h.skew }

// Kurtosis returns the excess kurtosis of the price series cached at
// construction time.
func (h *Holding) Kurtosis() float64 { return h.kurtosis }

// DailyReturns returns the daily percentage change of the price history.
func (h *Holding) DailyReturns() *timeseries.Table {
	return quant.DailyReturns(h.prices)
}

// ExpectedReturnAt recomputes the historical mean return for the given
// trading-day frequency. It does not touch the cached statistics.
func (h *Holding) ExpectedReturnAt(freq int) float64 {
	return quant.HistoricalMeanReturn(h.prices, freq)[0]
}

// VolatilityAt recomputes the volatility for the given trading-day frequency.
// It does not touch the cached statistics.
func (h *Holding) VolatilityAt(freq int) float64 {
	returns := quant.DailyReturns(h.prices)
	col, _ := returns.Column(returns.Labels()[0])
	return quant.Std(col) * math.Sqrt(float64(freq))
}

func (h *Holding) String() string {
	return fmt.Sprintf("Contains information about %s.", h.meta.Name)
}
