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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	tradesFile string
	currency   string
	contract   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "trade history with per-match realized PnL" }
func (*historyCmd) Usage() string {
	return `pnl history -t <trades.csv> [-c <currency>] [-contract <name>]

  Prints the append-only trade history: one row per matched or opened lot
  slice, in emission order. Use -contract to keep a single contract's rows.

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "t", "", "Trade table (CSV with Contract, Price, Quantity columns)")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency")
	f.StringVar(&c.contract, "contract", "", "Only show events for this contract")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tradesFile == "" {
		fmt.Fprintln(os.Stderr, "missing -t trades file")
		return subcommands.ExitUsageError
	}
	trades, err := decodeTradesFile(c.tradesFile, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := fifopnl.ProcessTrades(trades, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	history := r.History
	if c.contract != "" {
		filtered := make(fifopnl.History, 0, len(history))
		for _, e := range history {
			if e.Contract == c.contract {
				filtered = append(filtered, e)
			}
		}
		history = filtered
	}

	printMarkdown(renderer.HistoryMarkdown(history))
	return subcommands.ExitSuccess
}
