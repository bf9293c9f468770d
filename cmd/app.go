// Package cmd implements the CLI application to compute FIFO PnL reports.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")

	c.Register(&marksCmd{}, "marks")

	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders markdown for the terminal. It falls back to the raw
// markdown when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// decodeTradesFile reads the ordered trade table from a CSV file.
func decodeTradesFile(path, currency string) ([]fifopnl.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open trades file %q: %w", path, err)
	}
	defer f.Close()

	trades, err := fifopnl.DecodeTrades(f, currency)
	if err != nil {
		return nil, fmt.Errorf("in trades file %q: %w", path, err)
	}
	return trades, nil
}

// decodeMarksFile reads the marks YAML file. A missing file is not an
// error: valuation simply runs with no mark prices.
func decodeMarksFile(path string) (*fifopnl.MarksFile, error) {
	if path == "" {
		return &fifopnl.MarksFile{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open marks file %q: %w", path, err)
	}
	defer f.Close()

	mf, err := fifopnl.DecodeMarks(f)
	if err != nil {
		return nil, fmt.Errorf("in marks file %q: %w", path, err)
	}
	return mf, nil
}
