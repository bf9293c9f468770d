package journal

const Schema = `
CREATE TABLE IF NOT EXISTS events (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	type TEXT NOT NULL,
	contract TEXT NOT NULL,
	price TEXT NOT NULL,
	quantity TEXT NOT NULL,
	pnl TEXT NOT NULL,
	note TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE TABLE IF NOT EXISTS positions (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	contract TEXT NOT NULL,
	side TEXT NOT NULL,
	price TEXT NOT NULL,
	quantity TEXT NOT NULL,
	cost_basis TEXT NOT NULL,
	marked INTEGER NOT NULL,
	mark_price TEXT,
	unrealized TEXT,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_events_contract ON events(contract);
`
