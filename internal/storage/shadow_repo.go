package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ShadowRepo struct {
	db *sql.DB
}

func NewShadowRepo(db *sql.DB) *ShadowRepo {
	return &ShadowRepo{db: db}
}

// Lives returns livesDefeated for a shadow, defaulting to 0 for an unseen id.
func (r *ShadowRepo) Lives(ctx context.Context, shadowID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT lives_defeated FROM shadow_progress WHERE shadow_id = ?`, shadowID)
	var n int
	if err := row.Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("shadow lives: %w", err)
	}
	return n, nil
}

func (r *ShadowRepo) SetLives(ctx context.Context, shadowID string, lives int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shadow_progress (shadow_id, lives_defeated) VALUES (?, ?)
		ON CONFLICT(shadow_id) DO UPDATE SET lives_defeated = excluded.lives_defeated
	`, shadowID, lives)
	if err != nil {
		return fmt.Errorf("shadow set lives: %w", err)
	}
	return nil
}

func (r *ShadowRepo) Progress(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT shadow_id, lives_defeated FROM shadow_progress`)
	if err != nil {
		return nil, fmt.Errorf("shadow progress: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("shadow progress scan: %w", err)
		}
		out[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("shadow progress rows: %w", err)
	}
	return out, nil
}

func (r *ShadowRepo) MarkCaptured(ctx context.Context, shadowID string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO captured_shadows (shadow_id) VALUES (?)`, shadowID)
	if err != nil {
		return fmt.Errorf("shadow mark captured: %w", err)
	}
	return nil
}

func (r *ShadowRepo) IsCaptured(ctx context.Context, shadowID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM captured_shadows WHERE shadow_id = ?`, shadowID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("shadow is captured: %w", err)
	}
	return true, nil
}

func (r *ShadowRepo) Captured(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT shadow_id FROM captured_shadows ORDER BY shadow_id`)
	if err != nil {
		return nil, fmt.Errorf("shadow captured: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("shadow captured scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("shadow captured rows: %w", err)
	}
	return out, nil
}
