// Command fq inspects and optimises an investment portfolio from the
// command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Magic-Academy/FinQuant/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It exits the
// process when invoked by the shell, and does nothing otherwise.
func completion() {
	csv := predict.Files("*.csv")
	withKey := map[string]complete.Predictor{"eodhd-api-key": predict.Nothing}

	fq := &complete.Command{
		Flags: map[string]complete.Predictor{
			"m": csv,
			"p": csv,
			"c": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"properties": {Flags: map[string]complete.Predictor{"holding": predict.Nothing}},
			"optimise": {Flags: map[string]complete.Predictor{
				"n":        predict.Nothing,
				"r":        predict.Nothing,
				"freq":     predict.Nothing,
				"seed":     predict.Nothing,
				"total":    predict.Nothing,
				"frontier": predict.Nothing,
			}},
			"fetch": {Flags: map[string]complete.Predictor{
				"eodhd-api-key": predict.Nothing,
				"from":          predict.Nothing,
				"to":            predict.Nothing,
				"o":             csv,
			}},
			"search": {Flags: withKey},
			"topic":  {Args: predict.Set{"readme", "building", "statistics", "optimisation", "data", "*"}},
			"assist": {},
		},
	}
	fq.Complete("fq")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
