package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal stores run results in a SQLite database. Amounts are stored
// as decimal text to keep them exact.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordEvent(e EventRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO events
		(run_id, seq, type, contract, price, quantity, pnl, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Seq, e.Type, e.Contract, e.Price, e.Quantity, e.PnL, e.Note,
	)
	return err
}

func (j *SQLiteJournal) RecordPosition(p PositionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO positions
		(run_id, seq, contract, side, price, quantity, cost_basis, marked, mark_price, unrealized)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.RunID, p.Seq, p.Contract, p.Side, p.Price, p.Quantity, p.CostBasis, p.Marked, p.MarkPrice, p.Unrealized,
	)
	return err
}

// ListEvents returns a run's trade history events in emission order.
func (j *SQLiteJournal) ListEvents(runID string) ([]EventRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, seq, type, contract, price, quantity, pnl, note
		FROM events WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		var e EventRecord
		if err := rows.Scan(&e.RunID, &e.Seq, &e.Type, &e.Contract, &e.Price, &e.Quantity, &e.PnL, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListPositions returns a run's remaining-position rows in snapshot order.
func (j *SQLiteJournal) ListPositions(runID string) ([]PositionRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, seq, contract, side, price, quantity, cost_basis, marked, mark_price, unrealized
		FROM positions WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PositionRecord
	for rows.Next() {
		var p PositionRecord
		if err := rows.Scan(&p.RunID, &p.Seq, &p.Contract, &p.Side, &p.Price, &p.Quantity, &p.CostBasis, &p.Marked, &p.MarkPrice, &p.Unrealized); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
