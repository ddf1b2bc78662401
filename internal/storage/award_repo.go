package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const awardKey = "pending"

// AwardRepo holds at most one pending life award at a time. Put overwrites,
// Take consumes. The read-then-delete in Take runs in one transaction so the
// award can never be observed twice.
type AwardRepo struct {
	db *sql.DB
}

func NewAwardRepo(db *sql.DB) *AwardRepo {
	return &AwardRepo{db: db}
}

func (r *AwardRepo) Put(ctx context.Context, award LifeAward) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pending_life (key, shadow_id, lives) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET shadow_id = excluded.shadow_id, lives = excluded.lives
	`, awardKey, award.ShadowID, award.Lives)
	if err != nil {
		return fmt.Errorf("award put: %w", err)
	}
	return nil
}

func (r *AwardRepo) Take(ctx context.Context) (*LifeAward, error) {
	var award *LifeAward
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT shadow_id, lives FROM pending_life WHERE key = ?`, awardKey)
		var a LifeAward
		if err := row.Scan(&a.ShadowID, &a.Lives); err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return fmt.Errorf("award scan: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM pending_life WHERE key = ?`, awardKey); err != nil {
			return fmt.Errorf("award delete: %w", err)
		}
		award = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}
