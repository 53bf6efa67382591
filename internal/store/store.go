// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted events in a SQLite database with
// full-text search, so multi-document schedules can be queried without
// re-running extraction.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

const dbFile = "schedule.db"

// Store manages the schedule event database.
type Store struct {
	db         *sql.DB
	storeDir   string
	maxResults int

	// fts records whether the sqlite driver was compiled with FTS5
	// (mattn/go-sqlite3 needs the sqlite_fts5 build tag; the magefile
	// Build and Test targets set it). Without it, full-text queries
	// degrade to LIKE scans over the searchable columns.
	fts bool
}

// NewStore opens or creates the event database at storeDir/schedule.db,
// creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	storeDir := cfg.StoreDir
	if storeDir == "" {
		storeDir = "store"
	}
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(storeDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		storeDir:   storeDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			source_path TEXT,
			indexed_at TEXT,
			event_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			doc_id TEXT NOT NULL REFERENCES documents(id),
			seq INTEGER NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			session_name TEXT NOT NULL,
			speaker TEXT,
			location TEXT,
			raw_text TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_doc_id ON events(doc_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	s.fts = s.ftsAvailable()
	if !s.fts {
		// A database created by an FTS-enabled build carries sync triggers
		// that would fail every insert here; drop them so indexing keeps
		// working with the LIKE fallback.
		for _, trigger := range []string{"events_ai", "events_ad", "events_au"} {
			if _, err := s.db.Exec(`DROP TRIGGER IF EXISTS ` + trigger); err != nil {
				return fmt.Errorf("dropping FTS trigger %s: %w", trigger, err)
			}
		}
		return nil
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='events_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE events_fts USING fts5(
				session_name, speaker, location, raw_text,
				content=events, content_rowid=rowid)`,
			`CREATE TRIGGER events_ai AFTER INSERT ON events BEGIN
				INSERT INTO events_fts(rowid, session_name, speaker, location, raw_text)
				VALUES (new.rowid, new.session_name, new.speaker, new.location, new.raw_text);
			END`,
			`CREATE TRIGGER events_ad AFTER DELETE ON events BEGIN
				INSERT INTO events_fts(events_fts, rowid, session_name, speaker, location, raw_text)
				VALUES('delete', old.rowid, old.session_name, old.speaker, old.location, old.raw_text);
			END`,
			`CREATE TRIGGER events_au AFTER UPDATE ON events BEGIN
				INSERT INTO events_fts(events_fts, rowid, session_name, speaker, location, raw_text)
				VALUES('delete', old.rowid, old.session_name, old.speaker, old.location, old.raw_text);
				INSERT INTO events_fts(rowid, session_name, speaker, location, raw_text)
				VALUES (new.rowid, new.session_name, new.speaker, new.location, new.raw_text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// ftsAvailable reports whether the linked sqlite library provides the FTS5
// module, by creating and dropping a throwaway virtual table in temp.
func (s *Store) ftsAvailable() bool {
	if _, err := s.db.Exec(`CREATE VIRTUAL TABLE temp.fts_check USING fts5(x)`); err != nil {
		return false
	}
	s.db.Exec(`DROP TABLE temp.fts_check`)
	return true
}

// Index stores one document's event sequence under docID. Re-indexing a
// document replaces its previous rows; event order within the document is
// preserved through the seq column.
func (s *Store) Index(ctx context.Context, docID, sourcePath string, events []types.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE doc_id = ?`, docID); err != nil {
		return fmt.Errorf("deleting old events: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, indexed_at, event_count)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source_path=excluded.source_path, indexed_at=excluded.indexed_at,
			event_count=excluded.event_count`,
		docID, sourcePath, time.Now().UTC().Format(time.RFC3339), len(events),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO events (id, doc_id, seq, date, time, session_name, speaker, location, raw_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for seq, ev := range events {
		_, err := stmt.ExecContext(ctx,
			eventID(docID, seq), docID, seq,
			ev.Date, ev.Time, ev.SessionName, ev.Speaker, ev.Location, ev.RawText,
		)
		if err != nil {
			return fmt.Errorf("inserting event %d: %w", seq, err)
		}
	}

	return tx.Commit()
}

// eventID generates a deterministic ID from document ID and sequence
// position, stable across re-indexing runs.
func eventID(docID string, seq int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s/%d", docID, seq)
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
