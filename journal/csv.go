package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVJournal writes run results to a pair of CSV files, one for trade
// history events and one for remaining positions.
type CSVJournal struct {
	events    *csv.Writer
	positions *csv.Writer
	ef, pf    *os.File
}

// NewCSV creates (truncating) the two CSV files and writes their headers.
func NewCSV(eventsPath, positionsPath string) (*CSVJournal, error) {
	ef, err := os.Create(eventsPath)
	if err != nil {
		return nil, err
	}
	pf, err := os.Create(positionsPath)
	if err != nil {
		ef.Close()
		return nil, err
	}

	ew := csv.NewWriter(ef)
	pw := csv.NewWriter(pf)

	if err := ew.Write([]string{"run_id", "seq", "type", "contract", "price", "quantity", "pnl", "note"}); err != nil {
		return nil, err
	}
	if err := pw.Write([]string{"run_id", "seq", "contract", "side", "price", "quantity", "cost_basis", "marked", "mark_price", "unrealized"}); err != nil {
		return nil, err
	}

	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}
	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{ew, pw, ef, pf}, nil
}

func (j *CSVJournal) RecordEvent(e EventRecord) error {
	j.events.Write([]string{
		e.RunID,
		strconv.Itoa(e.Seq),
		e.Type,
		e.Contract,
		e.Price,
		e.Quantity,
		e.PnL,
		e.Note,
	})
	j.events.Flush()
	return j.events.Error()
}

func (j *CSVJournal) RecordPosition(p PositionRecord) error {
	err := j.positions.Write([]string{
		p.RunID,
		strconv.Itoa(p.Seq),
		p.Contract,
		p.Side,
		p.Price,
		p.Quantity,
		p.CostBasis,
		strconv.FormatBool(p.Marked),
		p.MarkPrice,
		p.Unrealized,
	})
	if err != nil {
		return err
	}

	j.positions.Flush()
	return j.positions.Error()
}

func (j *CSVJournal) Close() error {
	j.events.Flush()
	if err := j.events.Error(); err != nil {
		return err
	}
	j.positions.Flush()
	if err := j.positions.Error(); err != nil {
		return err
	}

	if err := j.ef.Close(); err != nil {
		return err
	}
	if err := j.pf.Close(); err != nil {
		return err
	}
	return nil
}
