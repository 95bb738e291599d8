package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Magic-Academy/FinQuant/eodhd"
	"github.com/google/subcommands"
)

const eodhdAPIKeyEnv = "EODHD_API_KEY"

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	eodhdApiFlag string
	from         string
	to           string
	output       string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches price history from EODHD" }
func (*fetchCmd) Usage() string {
	return `fq fetch [-from <date>] [-to <date>] [-o <file>] <name>...

  Fetches the end-of-day price history of the named instruments from
  eodhd.com and writes it as a CSV price table, ready for the other commands.
  Names without an exchange are looked up on the US exchange: GOOG means GOOG.US.

  Requires the EODHD_API_KEY environment variable to be set or passed as a flag.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eodhdApiFlag, "eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the "+eodhdAPIKeyEnv+" environment variable. You can get one at https://eodhd.com/")
	f.StringVar(&c.from, "from", "", "Start of the date range (YYYY-MM-DD), open by default")
	f.StringVar(&c.to, "to", "", "End of the date range (YYYY-MM-DD), open by default")
	f.StringVar(&c.output, "o", "", "Write the price table to this file instead of stdout")
}

// eodhdApiKey retrieves the EODHD API key from the command-line flag or the environment variable.
// It prioritizes the flag over the environment variable.
func (c *fetchCmd) eodhdApiKey() string {
	if c.eodhdApiFlag == "" {
		c.eodhdApiFlag = os.Getenv(eodhdAPIKeyEnv)
	}
	return c.eodhdApiFlag
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one instrument name is required.")
		return subcommands.ExitUsageError
	}

	key := c.eodhdApiKey()
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhdAPIKeyEnv)
		return subcommands.ExitFailure
	}

	from, err := parseDateFlag(c.from)
	if err != nil {
		return fail(fmt.Errorf("invalid -from date: %w", err))
	}
	to, err := parseDateFlag(c.to)
	if err != nil {
		return fail(fmt.Errorf("invalid -to date: %w", err))
	}

	table, err := eodhd.NewClient(key).FetchPrices(f.Args(), from, to)
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := WritePrices(out, table); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Printf("Wrote %d days of %s to %s\n", table.Len(), strings.Join(f.Args(), ", "), c.output)
	}
	return subcommands.ExitSuccess
}
