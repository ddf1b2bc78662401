package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

const habitColumns = `id, name, icon, description, energy_boost, connection_boost, skill_boost, completed, streak, date, info`

func scanHabit(row interface{ Scan(...any) error }) (*Habit, error) {
	var h Habit
	var icon, description, info sql.NullString
	var completed int
	if err := row.Scan(&h.ID, &h.Name, &icon, &description, &h.EnergyBoost, &h.ConnectionBoost, &h.SkillBoost, &completed, &h.Streak, &h.Date, &info); err != nil {
		return nil, err
	}
	h.Icon = icon.String
	h.Description = description.String
	h.Completed = completed != 0
	h.Info = decodeHabitInfo(info)
	return &h, nil
}

// decodeHabitInfo tolerates corrupt blobs: a bad JSON payload yields the zero
// value for this field only and never fails the row.
func decodeHabitInfo(info sql.NullString) HabitInfo {
	if !info.Valid || info.String == "" {
		return HabitInfo{}
	}
	var out HabitInfo
	if err := json.Unmarshal([]byte(info.String), &out); err != nil {
		return HabitInfo{}
	}
	return out
}

func (r *HabitRepo) Get(ctx context.Context, id string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get: %w", err)
	}
	return h, nil
}

func (r *HabitRepo) List(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

func (r *HabitRepo) Insert(ctx context.Context, h *Habit) error {
	info, err := json.Marshal(h.Info)
	if err != nil {
		return fmt.Errorf("habit info marshal: %w", err)
	}
	completed := 0
	if h.Completed {
		completed = 1
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, icon, description, energy_boost, connection_boost, skill_boost, completed, streak, date, info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, h.ID, h.Name, h.Icon, h.Description, h.EnergyBoost, h.ConnectionBoost, h.SkillBoost, completed, h.Streak, h.Date, string(info))
	if err != nil {
		return fmt.Errorf("habit insert: %w", err)
	}
	return nil
}

func (r *HabitRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("habit delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("habit delete rows: %w", err)
	}
	return n > 0, nil
}

func (r *HabitRepo) MarkCompleted(ctx context.Context, id string, streak int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET completed = 1, streak = ? WHERE id = ?`, streak, id)
	if err != nil {
		return fmt.Errorf("habit mark completed: %w", err)
	}
	return nil
}

// ResetForDate clears completion flags on every habit whose stored date
// differs from today and advances the date tag. Streak values are untouched.
func (r *HabitRepo) ResetForDate(ctx context.Context, today string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE habits SET completed = 0, date = ? WHERE date <> ?`, today, today)
	if err != nil {
		return 0, fmt.Errorf("habit reset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("habit reset rows: %w", err)
	}
	return n, nil
}

func (r *HabitRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM habits`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("habit count: %w", err)
	}
	return n, nil
}
