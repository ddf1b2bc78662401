package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainAvatarKey = "main_user"

type AvatarRepo struct {
	db *sql.DB
}

func NewAvatarRepo(db *sql.DB) *AvatarRepo {
	return &AvatarRepo{db: db}
}

func (r *AvatarRepo) Get(ctx context.Context, key string) (*Avatar, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, level, energy, connection, skill, streak, total_completed, day_zero, shadows_defeated
		FROM avatar WHERE key = ?`, key)

	var a Avatar
	var dayZero int
	if err := row.Scan(&a.Key, &a.Level, &a.Energy, &a.Connection, &a.Skill, &a.Streak, &a.TotalCompleted, &dayZero, &a.ShadowsDefeated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("avatar get: %w", err)
	}
	a.DayZero = dayZero != 0
	return &a, nil
}

func (r *AvatarRepo) GetOrCreateMain(ctx context.Context) (*Avatar, error) {
	a, err := r.Get(ctx, MainAvatarKey)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO avatar (key) VALUES (?)`, MainAvatarKey); err != nil {
		return nil, fmt.Errorf("avatar insert: %w", err)
	}
	return r.Get(ctx, MainAvatarKey)
}

func (r *AvatarRepo) Update(ctx context.Context, a *Avatar) error {
	dayZero := 0
	if a.DayZero {
		dayZero = 1
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE avatar
		SET level = ?, energy = ?, connection = ?, skill = ?, streak = ?, total_completed = ?, day_zero = ?, shadows_defeated = ?
		WHERE key = ?
	`, a.Level, a.Energy, a.Connection, a.Skill, a.Streak, a.TotalCompleted, dayZero, a.ShadowsDefeated, a.Key)
	if err != nil {
		return fmt.Errorf("avatar update: %w", err)
	}
	return nil
}
