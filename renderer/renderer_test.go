package renderer

import (
	"strings"
	"testing"

	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

func run(t *testing.T, trades []fifopnl.Trade, marks fifopnl.MarkPrices) (*fifopnl.Result, *fifopnl.Valuation) {
	t.Helper()
	r, err := fifopnl.ProcessTrades(trades, "USD")
	if err != nil {
		t.Fatalf("ProcessTrades() error = %v", err)
	}
	return r, fifopnl.ValuePositions(r.Book, marks, "USD")
}

func TestHistoryMarkdown(t *testing.T) {
	r, _ := run(t, []fifopnl.Trade{
		{Contract: "X", Price: fifopnl.M(100, "USD"), Quantity: fifopnl.Q(10)},
		{Contract: "X", Price: fifopnl.M(105, "USD"), Quantity: fifopnl.Q(-4)},
	}, nil)

	md := HistoryMarkdown(r.History)
	for _, want := range []string{"| BUY |", "| SELL |", "+$20.00", "Matched 4 @ $100.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("history markdown missing %q:\n%s", want, md)
		}
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	md := HistoryMarkdown(nil)
	if !strings.Contains(md, "No trades.") {
		t.Errorf("empty history markdown = %q", md)
	}
}

func TestSummaryMarkdown_FlagsUnmarkedContracts(t *testing.T) {
	r, v := run(t, []fifopnl.Trade{
		{Contract: "X", Price: fifopnl.M(100, "USD"), Quantity: fifopnl.Q(10)},
	}, nil)

	md := SummaryMarkdown(r.Realized, v)
	if !strings.Contains(md, "No mark price for: X") {
		t.Errorf("summary does not flag unmarked contract:\n%s", md)
	}
}

func TestPositionsMarkdown_SummaryAggregates(t *testing.T) {
	_, v := run(t, []fifopnl.Trade{
		{Contract: "X", Price: fifopnl.M(100, "USD"), Quantity: fifopnl.Q(10)},
		{Contract: "X", Price: fifopnl.M(110, "USD"), Quantity: fifopnl.Q(10)},
	}, fifopnl.MarkPrices{"X": fifopnl.M(120, "USD")})

	md := PositionsMarkdown(v)
	// Two lots, one summary row: 20 units at average 105, unrealized +300.
	for _, want := range []string{"| 20 |", "$105.00", "+$300.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("positions markdown missing %q:\n%s", want, md)
		}
	}
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	_, v := run(t, []fifopnl.Trade{
		{Contract: "X", Price: fifopnl.M(100, "USD"), Quantity: fifopnl.Q(5)},
		{Contract: "X", Price: fifopnl.M(101, "USD"), Quantity: fifopnl.Q(-5)},
	}, nil)

	md := PositionsMarkdown(v)
	if !strings.Contains(md, "No remaining positions.") {
		t.Errorf("flat book positions markdown = %q", md)
	}
}
