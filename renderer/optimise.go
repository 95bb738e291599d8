package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Magic-Academy/FinQuant/optimise"
)

// OptimisationMarkdown renders the outcome of a Monte Carlo weight search:
// the best portfolio per strategy, and the seed portfolio for comparison.
func OptimisationMarkdown(r *optimise.MonteCarloResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Optimised Portfolios (%d trials)\n", r.Trials)
	writeResult(&b, &r.MaxSharpe)
	writeResult(&b, &r.MinVolatility)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.Initial.Allocations) == 0 {
			return false
		}
		writeResult(w, &r.Initial)
		return true
	})
	return b.String()
}

// ResultMarkdown renders a single optimised weight vector.
func ResultMarkdown(r *optimise.Result) string {
	var b strings.Builder
	writeResult(&b, r)
	return b.String()
}

func writeResult(w io.Writer, r *optimise.Result) {
	fmt.Fprintf(w, "\n## %s\n\n", r.Strategy)
	fmt.Fprintln(w, "| Instrument | Weight | Allocation |")
	fmt.Fprintln(w, "|:---|---:|---:|")
	for _, a := range r.Allocations {
		fmt.Fprintf(w, "| %s | %.2f%% | %.2f |\n", a.Label, a.Weight*100, a.Amount)
	}
	fmt.Fprintf(w, "\nExpected Return: %.2f%%, Volatility: %.2f%%, Sharpe Ratio: %.4f\n",
		r.ExpectedReturn*100, r.Volatility*100, r.Sharpe)
}
