package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	fifopnl "github.com/githudsucks/FIFO-PNL-Greyrock"
)

func sampleRun(t *testing.T) (*fifopnl.Result, *fifopnl.Valuation) {
	t.Helper()
	r, err := fifopnl.ProcessTrades([]fifopnl.Trade{
		{Contract: "X", Price: fifopnl.M(100, "USD"), Quantity: fifopnl.Q(10)},
		{Contract: "X", Price: fifopnl.M(105, "USD"), Quantity: fifopnl.Q(-4)},
		{Contract: "X", Price: fifopnl.M(98, "USD"), Quantity: fifopnl.Q(-10)},
	}, "USD")
	if err != nil {
		t.Fatalf("ProcessTrades() error = %v", err)
	}
	v := fifopnl.ValuePositions(r.Book, fifopnl.MarkPrices{"X": fifopnl.M(90, "USD")}, "USD")
	return r, v
}

func TestNewRunID_Sortable(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if a == b {
		t.Fatal("two run IDs are identical")
	}
	if !(a < b) {
		t.Errorf("run IDs not increasing: %s then %s", a, b)
	}
}

func TestCSVJournal_RecordsFullRun(t *testing.T) {
	dir := t.TempDir()
	eventsPath := filepath.Join(dir, "events.csv")
	positionsPath := filepath.Join(dir, "positions.csv")

	j, err := NewCSV(eventsPath, positionsPath)
	if err != nil {
		t.Fatalf("NewCSV() error = %v", err)
	}

	r, v := sampleRun(t)
	runID := NewRunID()
	if err := Record(j, runID, r, v); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ef, err := os.Open(eventsPath)
	if err != nil {
		t.Fatal(err)
	}
	defer ef.Close()
	rows, err := csv.NewReader(ef).ReadAll()
	if err != nil {
		t.Fatalf("reading events back: %v", err)
	}
	// header + one row per history event
	if len(rows) != len(r.History)+1 {
		t.Fatalf("events file has %d rows, want %d", len(rows), len(r.History)+1)
	}
	if rows[1][0] != runID || rows[1][2] != "BUY" {
		t.Errorf("first event row = %v, want run %s BUY", rows[1], runID)
	}
	// pnl column of the SELL row keeps the exact decimal text.
	if rows[2][6] != "20" {
		t.Errorf("SELL pnl stored as %q, want \"20\"", rows[2][6])
	}

	pf, err := os.Open(positionsPath)
	if err != nil {
		t.Fatal(err)
	}
	defer pf.Close()
	prows, err := csv.NewReader(pf).ReadAll()
	if err != nil {
		t.Fatalf("reading positions back: %v", err)
	}
	if len(prows) != len(v.Positions)+1 {
		t.Fatalf("positions file has %d rows, want %d", len(prows), len(v.Positions)+1)
	}
	if prows[1][3] != "SHORT" || prows[1][9] != "32" {
		t.Errorf("position row = %v, want SHORT with unrealized 32", prows[1])
	}
}

func TestSQLiteJournal_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	defer j.Close()

	r, v := sampleRun(t)
	runID := NewRunID()
	if err := Record(j, runID, r, v); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	events, err := j.ListEvents(runID)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != len(r.History) {
		t.Fatalf("got %d events, want %d", len(events), len(r.History))
	}
	for i, e := range events {
		if e.Seq != i {
			t.Errorf("event %d has seq %d, want emission order preserved", i, e.Seq)
		}
	}
	if events[0].Type != "BUY" || events[len(events)-1].Type != "SHORT" {
		t.Errorf("event types = %v...%v, want BUY...SHORT", events[0].Type, events[len(events)-1].Type)
	}

	positions, err := j.ListPositions(runID)
	if err != nil {
		t.Fatalf("ListPositions() error = %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	p := positions[0]
	if p.Side != "SHORT" || p.Price != "98" || p.Quantity != "4" || !p.Marked {
		t.Errorf("position = %+v, want marked SHORT 4 @ 98", p)
	}

	// An unknown run yields no rows, not an error.
	none, err := j.ListEvents("01UNKNOWN")
	if err != nil || len(none) != 0 {
		t.Errorf("ListEvents(unknown) = %v, %v; want empty", none, err)
	}
}

func TestSQLiteJournal_SeparatesRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	defer j.Close()

	r, v := sampleRun(t)
	first, second := NewRunID(), NewRunID()
	if err := Record(j, first, r, v); err != nil {
		t.Fatal(err)
	}
	if err := Record(j, second, r, v); err != nil {
		t.Fatal(err)
	}

	events, err := j.ListEvents(first)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range events {
		if e.RunID != first {
			t.Errorf("event from run %s leaked into run %s listing", e.RunID, first)
		}
	}
	if len(events) != len(r.History) {
		t.Errorf("run %s has %d events, want %d", first, len(events), len(r.History))
	}
}
