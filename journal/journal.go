// Package journal persists the outputs of one matching run (the trade
// history and the remaining-position snapshot) for audit, keyed by a
// time-sortable run ID. It stores results only; engine state is never
// persisted or restored.
package journal

import (
	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

// EventRecord is one trade-history event as stored, with its position in
// the run's emission order. Amounts are stored as exact decimal text.
type EventRecord struct {
	RunID    string
	Seq      int
	Type     string
	Contract string
	Price    string
	Quantity string
	PnL      string
	Note     string
}

// PositionRecord is one remaining-position snapshot row as stored.
type PositionRecord struct {
	RunID      string
	Seq        int
	Contract   string
	Side       string
	Price      string
	Quantity   string
	CostBasis  string
	Marked     bool
	MarkPrice  string
	Unrealized string
}

// Journal is a sink for one or more runs' results.
type Journal interface {
	RecordEvent(EventRecord) error
	RecordPosition(PositionRecord) error
	Close() error
}

// Record writes a full run, every history event and every snapshot row,
// to the journal under runID.
func Record(j Journal, runID string, r *fifopnl.Result, v *fifopnl.Valuation) error {
	for i, e := range r.History {
		rec := EventRecord{
			RunID:    runID,
			Seq:      i,
			Type:     e.Type.String(),
			Contract: e.Contract,
			Price:    e.Price.Text(),
			Quantity: e.Quantity.String(),
			PnL:      e.PnL.Text(),
			Note:     e.Note,
		}
		if err := j.RecordEvent(rec); err != nil {
			return err
		}
	}
	for i, p := range v.Positions {
		rec := PositionRecord{
			RunID:     runID,
			Seq:       i,
			Contract:  p.Contract,
			Side:      p.Side.String(),
			Price:     p.Price.Text(),
			Quantity:  p.Quantity.String(),
			CostBasis: p.CostBasis.Text(),
			Marked:    p.Marked,
		}
		if p.Marked {
			rec.MarkPrice = p.MarkPrice.Text()
			rec.Unrealized = p.Unrealized.Text()
		}
		if err := j.RecordPosition(rec); err != nil {
			return err
		}
	}
	return nil
}
