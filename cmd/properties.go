package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Magic-Academy/FinQuant/renderer"
	"github.com/google/subcommands"
)

// propertiesCmd holds the flags for the 'properties' subcommand.
type propertiesCmd struct {
	holding string
}

func (*propertiesCmd) Name() string     { return "properties" }
func (*propertiesCmd) Synopsis() string { return "display the portfolio risk and return figures" }
func (*propertiesCmd) Usage() string {
	return `fq properties [-holding <name>]

  Builds the portfolio from the metadata and prices files and displays its
  weights, expected return, volatility and Sharpe ratio.
`
}

func (c *propertiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holding, "holding", "", "Only display this holding")
}

func (c *propertiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail(err)
	}

	if c.holding != "" {
		h, ok := p.Holding(c.holding)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no holding %q in the portfolio (have %v)\n", c.holding, p.Names())
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.HoldingMarkdown(h))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderPortfolio(p))
	return subcommands.ExitSuccess
}
