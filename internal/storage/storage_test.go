package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHabitInfoCorruptBlobDefaults(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewHabitRepo(db)

	require.NoError(t, repo.Insert(ctx, &Habit{
		ID:   "h1",
		Name: "Morning sunlight",
		Date: "2026-08-29",
		Info: HabitInfo{WhyDo: "resets your clock", HowDo: "10 minutes outside"},
	}))

	// Corrupt the blob in place; the row must still load with zero-value info.
	_, err := db.ExecContext(ctx, `UPDATE habits SET info = '{not json' WHERE id = 'h1'`)
	require.NoError(t, err)

	h, err := repo.Get(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, h)
	require.Equal(t, "Morning sunlight", h.Name)
	require.Equal(t, HabitInfo{}, h.Info)

	// Other rows keep loading.
	require.NoError(t, repo.Insert(ctx, &Habit{ID: "h2", Name: "Deep work", Date: "2026-08-29"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestAwardTakeConsumesOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewAwardRepo(newTestDB(t))

	award, err := repo.Take(ctx)
	require.NoError(t, err)
	require.Nil(t, award)

	require.NoError(t, repo.Put(ctx, LifeAward{ShadowID: "doubt", Lives: 2}))

	award, err = repo.Take(ctx)
	require.NoError(t, err)
	require.NotNil(t, award)
	require.Equal(t, "doubt", award.ShadowID)
	require.Equal(t, 2, award.Lives)

	award, err = repo.Take(ctx)
	require.NoError(t, err)
	require.Nil(t, award)
}

func TestResetForDateLeavesStreaks(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepo(newTestDB(t))

	require.NoError(t, repo.Insert(ctx, &Habit{ID: "h1", Name: "Call a friend", Date: "2026-08-28", Completed: true, Streak: 4}))
	require.NoError(t, repo.Insert(ctx, &Habit{ID: "h2", Name: "Stretch", Date: "2026-08-28", Completed: false, Streak: 1}))

	n, err := repo.ResetForDate(ctx, "2026-08-29")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	h1, err := repo.Get(ctx, "h1")
	require.NoError(t, err)
	require.False(t, h1.Completed)
	require.Equal(t, 4, h1.Streak)
	require.Equal(t, "2026-08-29", h1.Date)

	// Idempotent on same-day call.
	n, err = repo.ResetForDate(ctx, "2026-08-29")
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}
