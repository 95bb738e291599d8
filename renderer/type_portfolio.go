package renderer

import (
	finquant "github.com/Magic-Academy/FinQuant"
)

// PortfolioRow is one holding's line in the portfolio report.
type PortfolioRow struct {
	Name           string
	FMV            finquant.Amount
	Weight         float64
	ExpectedReturn float64
	Volatility     float64
	Skewness       float64
	Kurtosis       float64
}

// PortfolioReport is the view rendered by the portfolio report templates.
type PortfolioReport struct {
	Total          finquant.Amount
	ExpectedReturn float64
	Volatility     float64
	Sharpe         float64
	Rows           []PortfolioRow
}

// NewPortfolioReport extracts the report view from a portfolio.
func NewPortfolioReport(p *finquant.Portfolio) *PortfolioReport {
	r := &PortfolioReport{
		Total:          p.TotalInvestment(),
		ExpectedReturn: p.CachedExpectedReturn(),
		Volatility:     p.CachedVolatility(),
		Sharpe:         p.CachedSharpe(),
	}
	weights, err := p.Weights()
	if err != nil {
		return r
	}
	skew, kurtosis := p.Skew(), p.Kurtosis()
	for i, name := range p.Names() {
		h, ok := p.Holding(name)
		if !ok {
			continue
		}
		r.Rows = append(r.Rows, PortfolioRow{
			Name:           name,
			FMV:            h.Metadata().FMV,
			Weight:         weights[i],
			ExpectedReturn: h.ExpectedReturn(),
			Volatility:     h.Volatility(),
			Skewness:       skew[i],
			Kurtosis:       kurtosis[i],
		})
	}
	return r
}

// RenderPortfolio renders the full portfolio report to a markdown string.
func RenderPortfolio(p *finquant.Portfolio) string {
	partials := map[string]string{
		"portfolio_properties": "portfolio_properties.md",
		"portfolio_holdings":   "portfolio_holdings.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, NewPortfolioReport(p))
}
