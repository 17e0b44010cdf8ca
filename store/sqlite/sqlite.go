/*
Package sqlite provides SQLite-backed save-slot persistence.

PURPOSE:
  Stores encoded save payloads under named slots. The engine never touches
  this package; the host boundary encodes state through the save package and
  hands the opaque bytes here. Validation happens on the way OUT (import),
  not on the way in - see save/.

KEY TABLE:
  save_slots: slot name -> payload blob + timestamp. Writing an existing
  slot overwrites it; a save slot is not a ledger.

CONCURRENCY:
  A sync.Mutex serializes writers. The engine itself is single-threaded;
  this guard only covers concurrent host requests.

WAL MODE:
  Opened with WAL for crash recovery; payloads are small, performance is
  irrelevant here.

USAGE:
  store, err := sqlite.New("./data/hangar.db")
  defer store.Close()
  err = store.Save(ctx, "autosave", payload, time.Now())
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/hangar-engine/core"
)

// Store persists save slots in SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Slot describes a stored save without its payload.
type Slot struct {
	Name    string
	SavedAt time.Time
}

// New opens (or creates) the database at dbPath. Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		saved_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Save writes (or overwrites) a slot.
func (s *Store) Save(ctx context.Context, name string, payload []byte, savedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO save_slots (name, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		name, payload, savedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", name, err)
	}
	return nil
}

// Load returns a slot's payload.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM save_slots WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", core.ErrSlotNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", name, err)
	}
	return payload, nil
}

// List returns every slot, most recent first.
func (s *Store) List(ctx context.Context) ([]Slot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, saved_at FROM save_slots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var slot Slot
		var savedAt string
		if err := rows.Scan(&slot.Name, &savedAt); err != nil {
			return nil, err
		}
		slot.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Delete removes a slot. Missing slots are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM save_slots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", name, err)
	}
	return nil
}
