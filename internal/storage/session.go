// Package storage keeps the run log of the current session in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives in memory only: it starts empty with every process and
// disappears when the store is closed.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN names a private in-memory database.
const memoryDSN = ":memory:"

// Store manages the in-memory database for one play session.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID            int64
	Score         int
	ElapsedMillis int64
	Kills         int
	Shots         int
	Hits          int
	Dashes        int
	EndedAt       time.Time
}

// SessionSummary aggregates every run of the session.
type SessionSummary struct {
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalKills int
	LongestMs  int64
}

// Open creates an empty session store and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep one.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			dashes INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, elapsed_ms DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database; all runs are discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// A zero EndedAt is replaced with the current time.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (score, elapsed_ms, kills, shots, hits, dashes, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Score, r.ElapsedMillis, r.Kills, r.Shots, r.Hits, r.Dashes, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the best runs, highest score first; ties go to the
// longer run, then the earlier one.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, elapsed_ms, kills, shots, hits, dashes, ended_at
		 FROM runs
		 ORDER BY score DESC, elapsed_ms DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.Score, &r.ElapsedMillis, &r.Kills, &r.Shots, &r.Hits, &r.Dashes, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Summary aggregates the session.
func (s *Store) Summary() (SessionSummary, error) {
	var sum SessionSummary
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(kills), 0), COALESCE(MAX(elapsed_ms), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.BestScore, &sum.AvgScore, &sum.TotalKills, &sum.LongestMs)
	if err != nil {
		return SessionSummary{}, fmt.Errorf("storage: cannot get session summary: %w", err)
	}
	return sum, nil
}
