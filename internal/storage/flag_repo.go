package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Well-known flag names.
const (
	// FlagShadowPathUnlocked is set by the first winning battle and read by
	// other surfaces (onboarding stage gating).
	FlagShadowPathUnlocked = "shadow_path_unlocked"
)

type FlagRepo struct {
	db *sql.DB
}

func NewFlagRepo(db *sql.DB) *FlagRepo {
	return &FlagRepo{db: db}
}

func (r *FlagRepo) Set(ctx context.Context, name string, value bool) error {
	v := 0
	if value {
		v = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO flags (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, v)
	if err != nil {
		return fmt.Errorf("flag set: %w", err)
	}
	return nil
}

func (r *FlagRepo) Get(ctx context.Context, name string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM flags WHERE name = ?`, name)
	var v int
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("flag get: %w", err)
	}
	return v != 0, nil
}
