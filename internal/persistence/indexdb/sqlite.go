// Package indexdb keeps a small sqlite index of save slots. It is a
// secondary read model: the .sav files are the source of truth and index
// failures must never block gameplay.
package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SaveIndex struct {
	db *sql.DB
}

type SaveRow struct {
	Slot    string
	Path    string
	Seed    string
	SavedAt string
	Placed  int
}

func Open(path string) (*SaveIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SaveIndex{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			seed TEXT NOT NULL,
			saved_at TEXT NOT NULL,
			placed_objects INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SaveIndex) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// RecordSave upserts the slot row after a save file has been written.
func (s *SaveIndex) RecordSave(slot, path, seed string, placed int) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO saves(slot, path, seed, saved_at, placed_objects)
		 VALUES(?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   path=excluded.path, seed=excluded.seed,
		   saved_at=excluded.saved_at, placed_objects=excluded.placed_objects`,
		slot, path, seed, time.Now().UTC().Format(time.RFC3339), placed,
	)
	return err
}

// ListSaves returns all slots, most recent first.
func (s *SaveIndex) ListSaves() ([]SaveRow, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT slot, path, seed, saved_at, placed_objects FROM saves ORDER BY saved_at DESC, slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaveRow
	for rows.Next() {
		var r SaveRow
		if err := rows.Scan(&r.Slot, &r.Path, &r.Seed, &r.SavedAt, &r.Placed); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PathFor returns the file path recorded for a slot, or "" if unknown.
func (s *SaveIndex) PathFor(slot string) (string, error) {
	if s == nil {
		return "", nil
	}
	var path string
	err := s.db.QueryRow(`SELECT path FROM saves WHERE slot = ?`, slot).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
