package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS avatar (
			key TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			energy INTEGER DEFAULT 25,
			connection INTEGER DEFAULT 20,
			skill INTEGER DEFAULT 15,
			streak INTEGER DEFAULT 0,
			total_completed INTEGER DEFAULT 0,
			day_zero INTEGER DEFAULT 0,
			shadows_defeated INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT,
			description TEXT,

			energy_boost INTEGER DEFAULT 0,
			connection_boost INTEGER DEFAULT 0,
			skill_boost INTEGER DEFAULT 0,

			completed INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			date TEXT NOT NULL,
			info TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS shadow_progress (
			shadow_id TEXT PRIMARY KEY,
			lives_defeated INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS captured_shadows (
			shadow_id TEXT PRIMARY KEY
		);`,
		// Append-only; rows are never updated or deleted.
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			habit_id TEXT,
			habit_name TEXT,
			entry TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		// Single-row mailbox, consumed with read-then-delete.
		`CREATE TABLE IF NOT EXISTS pending_life (
			key TEXT PRIMARY KEY,
			shadow_id TEXT NOT NULL,
			lives INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS flags (
			name TEXT PRIMARY KEY,
			value INTEGER DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_date ON habits(date);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_date ON journal_entries(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
