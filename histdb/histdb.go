// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: histdb/histdb.go
// Summary: SQLite-backed command history so recall survives restarts.

// Package histdb persists submitted command lines in SQLite. The session
// treats the store as optional: any failure here degrades to in-memory
// history.
package histdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	ts         INTEGER NOT NULL,
	command    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_ts ON history(ts);
`

// Store is a SQLite-backed command history log. Rows are tagged with a
// per-process session id so overlapping sessions stay distinguishable.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open opens the history database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db, sessionID: uuid.NewString()}, nil
}

// Append records one submitted command.
func (s *Store) Append(command string) error {
	_, err := s.db.Exec(
		`INSERT INTO history (session_id, ts, command) VALUES (?, ?, ?)`,
		s.sessionID, time.Now().UnixMilli(), command,
	)
	return err
}

// Recent returns up to limit commands across all sessions, oldest first,
// ready to seed the recall history.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT command FROM (
			SELECT id, command FROM history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, rows.Err()
}

// SessionID returns the id tagged onto rows written by this store.
func (s *Store) SessionID() string { return s.sessionID }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }
