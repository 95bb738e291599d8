package renderer

import (
	"strings"
	"testing"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/optimise"
	"github.com/Magic-Academy/FinQuant/timeseries"
)

func testHolding(t *testing.T, name string, fmv float64, prices []float64) *finquant.Holding {
	t.Helper()
	days := make([]timeseries.Date, len(prices))
	for i := range days {
		days[i] = timeseries.NewDate(2024, 1, 1+i)
	}
	table := timeseries.NewTable(days)
	if err := table.AddColumn(name, prices); err != nil {
		t.Fatal(err)
	}
	h, err := finquant.NewHolding(finquant.Metadata{
		Name:  name,
		FMV:   finquant.M(fmv, "USD"),
		Attrs: map[string]string{"Sector": "Technology"},
	}, table)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestHoldingMarkdown(t *testing.T) {
	h := testHolding(t, "GOOG", 500, []float64{100, 101, 102, 101, 103})

	got := HoldingMarkdown(h)
	for _, want := range []string{
		"# GOOG",
		"| FMV | $500.00 |",
		"| Expected Return |",
		"| Volatility |",
		"## Attributes",
		"| Sector | Technology |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestHoldingMarkdown_noAttributes(t *testing.T) {
	h := testHolding(t, "GOOG", 500, []float64{100, 101, 102})
	h2, err := finquant.NewHolding(finquant.Metadata{Name: "AMZN", FMV: finquant.M(500, "USD")}, h.Prices())
	if err != nil {
		t.Fatal(err)
	}
	if got := HoldingMarkdown(h2); strings.Contains(got, "## Attributes") {
		t.Errorf("HoldingMarkdown() rendered an empty attributes section:\n%s", got)
	}
}

func TestRenderPortfolio(t *testing.T) {
	p := finquant.NewPortfolio()
	if err := p.AddHolding(testHolding(t, "GOOG", 500, []float64{100, 101, 102, 101, 103})); err != nil {
		t.Fatal(err)
	}
	if err := p.AddHolding(testHolding(t, "AMZN", 500, []float64{50, 51, 50, 52, 53})); err != nil {
		t.Fatal(err)
	}

	got := RenderPortfolio(p)
	for _, want := range []string{
		"# Portfolio",
		"| Total Investment | $1,000.00 |",
		"## Holdings",
		"| GOOG |",
		"| AMZN |",
		"| 50.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderPortfolio() missing %q in:\n%s", want, got)
		}
	}
}

func TestOptimisationMarkdown(t *testing.T) {
	r := &optimise.MonteCarloResult{
		Trials: 100,
		MaxSharpe: optimise.Result{
			Strategy: "Maximum Sharpe Ratio",
			Allocations: []optimise.Allocation{
				{Label: "GOOG", Weight: 0.6, Amount: 600},
				{Label: "AMZN", Weight: 0.4, Amount: 400},
			},
			ExpectedReturn: 0.12, Volatility: 0.2, Sharpe: 0.575,
		},
		MinVolatility: optimise.Result{
			Strategy: "Minimum Volatility",
			Allocations: []optimise.Allocation{
				{Label: "GOOG", Weight: 0.3, Amount: 300},
				{Label: "AMZN", Weight: 0.7, Amount: 700},
			},
			ExpectedReturn: 0.08, Volatility: 0.15, Sharpe: 0.5,
		},
	}

	got := OptimisationMarkdown(r)
	for _, want := range []string{
		"# Optimised Portfolios (100 trials)",
		"## Maximum Sharpe Ratio",
		"| GOOG | 60.00% | 600.00 |",
		"## Minimum Volatility",
		"Expected Return: 8.00%, Volatility: 15.00%, Sharpe Ratio: 0.5000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("OptimisationMarkdown() missing %q in:\n%s", want, got)
		}
	}
	// The seed section only appears when seed statistics are present.
	if strings.Contains(got, "## \n") {
		t.Errorf("OptimisationMarkdown() rendered an empty seed section:\n%s", got)
	}
}
