// Package renderer turns matching and valuation results into markdown
// reports. It is purely presentational: every number it prints comes from
// the core result structs, aggregation included.
package renderer

import (
	"fmt"
	"strings"

	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

// HistoryMarkdown renders the append-only trade history as a markdown table,
// in exactly the order the events were emitted.
func HistoryMarkdown(h fifopnl.History) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Trade History\n\n")
	if len(h) == 0 {
		fmt.Fprintln(&b, "No trades.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Type | Contract | Price | Quantity | PnL | Note |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, e := range h {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Type,
			e.Contract,
			e.Price,
			e.Quantity,
			e.PnL.SignedString(),
			e.Note,
		)
	}
	return b.String()
}

// SummaryMarkdown renders the realized / unrealized / total PnL block.
func SummaryMarkdown(realized fifopnl.Money, v *fifopnl.Valuation) string {
	var b strings.Builder

	fmt.Fprint(&b, "# FIFO PnL Report\n\n")
	fmt.Fprintln(&b, "| | PnL |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Realized | %s |\n", realized.SignedString())
	fmt.Fprintf(&b, "| Unrealized | %s |\n", v.Unrealized.SignedString())
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", realized.Add(v.Unrealized).SignedString())

	if unmarked := v.Unmarked(); len(unmarked) > 0 {
		fmt.Fprintf(&b, "\nNo mark price for: %s. Their lots contribute zero unrealized PnL.\n",
			strings.Join(unmarked, ", "))
	}
	return b.String()
}

// PositionsMarkdown renders the remaining-position snapshot: one row per
// surviving lot, followed by a per-contract/side summary.
func PositionsMarkdown(v *fifopnl.Valuation) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Remaining Positions\n\n")
	if len(v.Positions) == 0 {
		fmt.Fprintln(&b, "No remaining positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Contract | Side | Price | Quantity | Cost Basis | Mark | Market Value | Unrealized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, row := range v.Positions {
		mark, value, unrealized := "-", "-", "-"
		if row.Marked {
			mark = row.MarkPrice.String()
			value = row.MarketValue.String()
			unrealized = row.Unrealized.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Contract,
			row.Side,
			row.Price,
			row.Quantity,
			row.CostBasis,
			mark,
			value,
			unrealized,
		)
	}

	fmt.Fprint(&b, "\n### Position Summary\n\n")
	fmt.Fprintln(&b, "| Contract | Side | Quantity | Avg Price | Total Cost | Unrealized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, s := range summarize(v) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			s.contract,
			s.side,
			s.quantity,
			s.cost.Div(s.quantity),
			s.cost,
			s.unrealized.SignedString(),
		)
	}
	return b.String()
}

// summaryRow aggregates all surviving lots of one contract and side.
type summaryRow struct {
	contract   string
	side       fifopnl.Side
	quantity   fifopnl.Quantity
	cost       fifopnl.Money
	unrealized fifopnl.Money
}

// summarize groups snapshot rows by contract and side, preserving row order.
func summarize(v *fifopnl.Valuation) []summaryRow {
	var out []summaryRow
	index := make(map[string]int)

	for _, row := range v.Positions {
		key := row.Contract + "\x00" + row.Side.String()
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, summaryRow{contract: row.Contract, side: row.Side})
		}
		out[i].quantity = out[i].quantity.Add(row.Quantity)
		out[i].cost = out[i].cost.Add(row.CostBasis)
		if row.Marked {
			out[i].unrealized = out[i].unrealized.Add(row.Unrealized)
		}
	}
	return out
}

// ReportMarkdown renders the full report: summary, trade history, and
// remaining positions.
func ReportMarkdown(r *fifopnl.Result, v *fifopnl.Valuation) string {
	var b strings.Builder
	b.WriteString(SummaryMarkdown(r.Realized, v))
	b.WriteString("\n")
	b.WriteString(HistoryMarkdown(r.History))
	b.WriteString("\n")
	b.WriteString(PositionsMarkdown(v))
	return b.String()
}
