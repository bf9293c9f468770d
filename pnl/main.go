package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/githudsucks/FIFO-PNL-Greyrock/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Calling Complete is a
// no-op outside of a completion request, so it runs before flag parsing.
func completion() {
	currencies := predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}
	cli := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"t":            predict.Files("*.csv"),
				"m":            predict.Files("*.yaml"),
				"c":            currencies,
				"format":       predict.Set{"markdown", "json"},
				"journal":      predict.Set{"csv", "sqlite"},
				"journal-path": predict.Dirs("*"),
			}},
			"history": {Flags: map[string]complete.Predictor{
				"t":        predict.Files("*.csv"),
				"c":        currencies,
				"contract": predict.Something,
			}},
			"positions": {Flags: map[string]complete.Predictor{
				"t": predict.Files("*.csv"),
				"m": predict.Files("*.yaml"),
				"c": currencies,
			}},
			"marks": {Flags: map[string]complete.Predictor{
				"m": predict.Files("*.yaml"),
				"c": currencies,
				"u": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "fifo", "marks", "journal"}},
		},
	}
	cli.Complete("pnl")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
