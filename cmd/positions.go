package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
	"github.com/githudsucks/FIFO-PNL-Greyrock/renderer"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	tradesFile string
	marksFile  string
	currency   string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "surviving lots valued against mark prices" }
func (*positionsCmd) Usage() string {
	return `pnl positions -t <trades.csv> [-m <marks.yaml>] [-c <currency>]

  Replays the trade table and prints the surviving lots, one row per lot,
  each valued against the mark prices when a mark is known.

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "t", "", "Trade table (CSV with Contract, Price, Quantity columns)")
	f.StringVar(&c.marksFile, "m", "", "Mark prices (YAML)")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tradesFile == "" {
		fmt.Fprintln(os.Stderr, "missing -t trades file")
		return subcommands.ExitUsageError
	}
	trades, err := decodeTradesFile(c.tradesFile, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	mf, err := decodeMarksFile(c.marksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := fifopnl.ProcessTrades(trades, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	v := fifopnl.ValuePositions(r.Book, mf.Prices(c.currency), c.currency)

	printMarkdown(renderer.PositionsMarkdown(v))
	return subcommands.ExitSuccess
}
