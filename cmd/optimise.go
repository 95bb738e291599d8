package cmd

import (
	"context"
	"flag"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/optimise"
	"github.com/Magic-Academy/FinQuant/renderer"
	"github.com/google/subcommands"
)

// optimiseCmd holds the flags for the 'optimise' subcommand.
type optimiseCmd struct {
	trials   int
	rate     float64
	freq     int
	seed     int64
	total    float64
	frontier bool
}

func (*optimiseCmd) Name() string     { return "optimise" }
func (*optimiseCmd) Synopsis() string { return "search for better weight allocations" }
func (*optimiseCmd) Usage() string {
	return `fq optimise [-n <trials>] [-r <rate>] [-freq <days>] [-seed <n>] [-total <amount>] [-frontier]

  Builds the portfolio from the metadata and prices files and searches for
  weight allocations that maximise the Sharpe ratio or minimise volatility.
  By default a Monte Carlo search; -frontier runs the numerical solver instead.
`
}

func (c *optimiseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.trials, "n", 0, "Number of random portfolios to draw (default 10000)")
	f.Float64Var(&c.rate, "r", 0, "Risk-free rate for the Sharpe ratio (default 0.005)")
	f.IntVar(&c.freq, "freq", 0, "Trading days per year for annualisation (default 252)")
	f.Int64Var(&c.seed, "seed", 0, "Seed for the random source, for reproducible runs")
	f.Float64Var(&c.total, "total", 0, "Total investment to allocate (default: the portfolio's own)")
	f.BoolVar(&c.frontier, "frontier", false, "Use the numerical solver instead of Monte Carlo")
}

func (c *optimiseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail(err)
	}

	cfg := optimise.Config{
		NumTrials:    c.trials,
		RiskFreeRate: c.rate,
		Freq:         c.freq,
		Seed:         c.seed,
	}

	var override *finquant.Amount
	if c.total > 0 {
		amount := finquant.M(c.total, p.TotalInvestment().Currency())
		override = &amount
	}

	if c.frontier {
		total := p.TotalInvestment().AsFloat()
		if override != nil {
			total = override.AsFloat()
		}
		maxSharpe, err := optimise.MaxSharpe(p.Prices(), total, cfg)
		if err != nil {
			return fail(err)
		}
		minVol, err := optimise.MinVolatility(p.Prices(), total, cfg)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ResultMarkdown(maxSharpe) + renderer.ResultMarkdown(minVol))
		return subcommands.ExitSuccess
	}

	result, err := p.Optimise(override, cfg)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.OptimisationMarkdown(result))
	return subcommands.ExitSuccess
}
