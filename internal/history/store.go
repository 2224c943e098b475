// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch operation outcomes in a SQLite database.
// Implements: prd004-history (R1-R3); docs/ARCHITECTURE § History.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfdesk/pkg/types"
)

const dbFile = "history.db"

// Run is one recorded batch operation.
type Run struct {
	ID        int64
	Operation string // "merge", "split-ranges", "split-pages", "split-equal"
	Source    string // primary source path, or the source count for merge
	Output    string // output file or directory
	Started   time.Time
	Duration  time.Duration
	Succeeded int
	Failed    int
	Items     []Item
}

// Item is one per-item outcome within a run. The error is stored as text;
// the live error value belongs to the engine call, not the history.
type Item struct {
	Item   string
	Output string
	Pages  int
	Error  string
}

// ItemsFromResult converts an engine result into storable history items.
func ItemsFromResult(result *types.BatchResult) []Item {
	items := make([]Item, 0, len(result.Items))
	for _, o := range result.Items {
		item := Item{Item: o.Item, Output: o.Output, Pages: o.Pages}
		if o.Err != nil {
			item.Error = o.Err.Error()
		}
		items = append(items, item)
	}
	return items
}

// Store manages the operation history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at
// historyDir/history.db, creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation TEXT NOT NULL,
			source TEXT,
			output TEXT,
			started TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			succeeded INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			item TEXT NOT NULL,
			output TEXT,
			pages INTEGER,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_run_id ON items(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and its items in one transaction, returning the run ID.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (operation, source, output, started, duration_ms, succeeded, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Operation, run.Source, run.Output,
		run.Started.UTC().Format(time.RFC3339Nano),
		run.Duration.Milliseconds(), run.Succeeded, run.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, item := range run.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (run_id, item, output, pages, error) VALUES (?, ?, ?, ?, ?)`,
			runID, item.Item, item.Output, item.Pages, item.Error,
		); err != nil {
			return 0, fmt.Errorf("inserting item %s: %w", item.Item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the most recent runs, newest first, with their items
// attached. A limit of 0 uses the configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, operation, source, output, started, duration_ms, succeeded, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.Operation, &run.Source, &run.Output,
			&started, &durationMS, &run.Succeeded, &run.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, started); parseErr == nil {
			run.Started = t
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}

	for i := range runs {
		items, err := s.runItems(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Items = items
	}
	return runs, nil
}

func (s *Store) runItems(ctx context.Context, runID int64) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item, output, pages, error FROM items WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying items for run %d: %w", runID, err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Item, &item.Output, &item.Pages, &item.Error); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
