package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
	"github.com/githudsucks/FIFO-PNL-Greyrock/journal"
	"github.com/githudsucks/FIFO-PNL-Greyrock/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	tradesFile  string
	marksFile   string
	currency    string
	format      string
	journalKind string
	journalPath string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full FIFO PnL report for a trade table" }
func (*reportCmd) Usage() string {
	return `pnl report -t <trades.csv> [-m <marks.yaml>] [-c <currency>] [-format markdown|json] [-journal csv|sqlite [-journal-path <path>]]

  Matches the trade table lot by lot, oldest lot first, and prints the
  realized/unrealized PnL summary, the trade history, and the remaining
  positions valued against the mark prices.

Usage Examples:
# Report over bond_trades.csv marked with eom_marks.yaml.
$ pnl report -t bond_trades.csv -m eom_marks.yaml

# Same run, persisted to a SQLite journal.
$ pnl report -t bond_trades.csv -m eom_marks.yaml -journal sqlite -journal-path runs.db

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "t", "", "Trade table (CSV with Contract, Price, Quantity columns)")
	f.StringVar(&c.marksFile, "m", "", "Mark-price file (YAML). Optional.")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency")
	f.StringVar(&c.format, "format", "markdown", "Output format (markdown, json)")
	f.StringVar(&c.journalKind, "journal", "", "Persist the run to a journal (csv, sqlite)")
	f.StringVar(&c.journalPath, "journal-path", "", "Journal destination: a .db file for sqlite, a file prefix for csv")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tradesFile == "" {
		fmt.Fprintln(os.Stderr, "missing -t trades file")
		return subcommands.ExitUsageError
	}

	r, v, status := c.run()
	if status != subcommands.ExitSuccess {
		return status
	}

	switch c.format {
	case "markdown":
		printMarkdown(renderer.ReportMarkdown(r, v))
	case "json":
		out := struct {
			Run       *fifopnl.Result    `json:"run"`
			Valuation *fifopnl.Valuation `json:"valuation"`
		}{r, v}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// run decodes the inputs, matches, values, and optionally journals the run.
func (c *reportCmd) run() (*fifopnl.Result, *fifopnl.Valuation, subcommands.ExitStatus) {
	trades, err := decodeTradesFile(c.tradesFile, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	mf, err := decodeMarksFile(c.marksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}

	r, err := fifopnl.ProcessTrades(trades, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	v := fifopnl.ValuePositions(r.Book, mf.Prices(c.currency), c.currency)

	if c.journalKind != "" {
		if err := c.journalRun(r, v); err != nil {
			fmt.Fprintf(os.Stderr, "Error journaling run: %v\n", err)
			return nil, nil, subcommands.ExitFailure
		}
	}
	return r, v, subcommands.ExitSuccess
}

func (c *reportCmd) journalRun(r *fifopnl.Result, v *fifopnl.Valuation) error {
	runID := journal.NewRunID()

	var j journal.Journal
	var err error
	switch c.journalKind {
	case "csv":
		prefix := c.journalPath
		if prefix == "" {
			prefix = "pnl_" + runID
		}
		j, err = journal.NewCSV(prefix+"_events.csv", prefix+"_positions.csv")
	case "sqlite":
		path := c.journalPath
		if path == "" {
			path = "pnl_runs.db"
		}
		j, err = journal.NewSQLite(path)
	default:
		return fmt.Errorf("unknown journal kind %q", c.journalKind)
	}
	if err != nil {
		return err
	}
	defer j.Close()

	if err := journal.Record(j, runID, r, v); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Journaled run %s\n", runID)
	return nil
}
