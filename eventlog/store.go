package eventlog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	input          TEXT NOT NULL,
	started        TEXT NOT NULL,
	finished       TEXT NOT NULL,
	operators      INTEGER NOT NULL,
	safe_operators INTEGER NOT NULL,
	places         INTEGER NOT NULL,
	transitions    INTEGER NOT NULL,
	unsolvable     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
`

// Store persists run summaries to a local SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the run database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening run store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing run store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts or replaces a run summary.
func (s *Store) SaveRun(run Run) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO runs
		(id, input, started, finished, operators, safe_operators, places, transitions, unsolvable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Input,
		run.Started.UTC().Format(time.RFC3339Nano),
		run.Finished.UTC().Format(time.RFC3339Nano),
		run.Operators, run.SafeOperators, run.Places, run.Transitions,
		boolToInt(run.Unsolvable))
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, input, started, finished, operators, safe_operators, places, transitions, unsolvable
		FROM runs ORDER BY started DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished string
		var unsolvable int
		if err := rows.Scan(&run.ID, &run.Input, &started, &finished,
			&run.Operators, &run.SafeOperators, &run.Places, &run.Transitions, &unsolvable); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Started, _ = time.Parse(time.RFC3339Nano, started)
		run.Finished, _ = time.Parse(time.RFC3339Nano, finished)
		run.Unsolvable = unsolvable != 0
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
