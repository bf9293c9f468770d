package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"
	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

// marksCmd holds the flags for the 'marks' subcommand.
type marksCmd struct {
	marksFile string
	currency  string
	update    bool
}

func (*marksCmd) Name() string     { return "marks" }
func (*marksCmd) Synopsis() string { return "list mark prices, optionally refreshing them from feeds" }
func (*marksCmd) Usage() string {
	return `pnl marks -m <marks.yaml> [-c <currency>] [-u]

  Prints the mark prices from the marks file. With -u, fetches each
  configured feed first and rewrites the file with the refreshed marks.

`
}

func (c *marksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.marksFile, "m", "", "Mark prices (YAML)")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency")
	f.BoolVar(&c.update, "u", false, "Refresh marks from their feeds before listing")
}

func (c *marksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.marksFile == "" {
		fmt.Fprintln(os.Stderr, "missing -m marks file")
		return subcommands.ExitUsageError
	}
	mf, err := decodeMarksFile(c.marksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.update {
		if err := mf.UpdateMarks(fifopnl.DailyClient()); err != nil {
			// Feeds that fail keep their previous mark, report and carry on.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		w, err := os.Create(c.marksFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot rewrite marks file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer w.Close()
		if err := fifopnl.EncodeMarks(w, mf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot rewrite marks file: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	prices := mf.Prices(c.currency)
	contracts := make([]string, 0, len(prices))
	for contract := range prices {
		contracts = append(contracts, contract)
	}
	sort.Strings(contracts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Mark Prices\n\n")
	fmt.Fprintf(&sb, "| Contract | Mark |\n")
	fmt.Fprintf(&sb, "|---|--:|\n")
	for _, contract := range contracts {
		fmt.Fprintf(&sb, "| %s | %s |\n", contract, prices[contract])
	}
	if len(contracts) == 0 {
		fmt.Fprintf(&sb, "\nNo marks.\n")
	}

	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
