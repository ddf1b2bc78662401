package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Append(ctx context.Context, e *JournalEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (date, habit_id, habit_name, entry, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Date, e.HabitID, e.HabitName, e.Entry, e.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("journal append: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal last insert id: %w", err)
	}
	return id, nil
}

func (r *JournalRepo) ListByDate(ctx context.Context, date string) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, habit_id, habit_name, entry, created_at
		FROM journal_entries
		WHERE date = ?
		ORDER BY created_at, id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var habitID, habitName sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &habitID, &habitName, &e.Entry, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		e.HabitID = habitID.String
		e.HabitName = habitName.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return out, nil
}
