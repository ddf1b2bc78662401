package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"shadowquest/internal/battle"
	"shadowquest/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db)
	if err := svc.SeedDefaults(ctx, "2026-08-29"); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}
	return svc
}

func TestCompleteHabitDayZeroScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SetDayZero(ctx, true); err != nil {
		t.Fatalf("set day zero: %v", err)
	}
	h, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{
		Name: "Scenario habit", EnergyBoost: 5, ConnectionBoost: 3, SkillBoost: 2,
	})
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}

	res, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Multiplier != 2 {
		t.Fatalf("multiplier=%d, want 2", res.Multiplier)
	}
	a := res.Avatar
	if a.Energy != 35 || a.Connection != 26 || a.Skill != 19 {
		t.Fatalf("stats=%d/%d/%d, want 35/26/19", a.Energy, a.Connection, a.Skill)
	}
	if a.TotalCompleted != 1 {
		t.Fatalf("total=%d, want 1", a.TotalCompleted)
	}
	if res.LevelUp {
		t.Fatalf("unexpected level-up at total=1")
	}
}

func TestCompleteHabitIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CompleteHabit(ctx, "morning-sunlight")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if _, err := svc.CompleteHabit(ctx, "morning-sunlight"); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second complete err=%v, want ErrAlreadyCompleted", err)
	}

	a, err := svc.Avatar(ctx)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if a.TotalCompleted != 1 {
		t.Fatalf("total=%d after repeat, want 1", a.TotalCompleted)
	}
	if a.Energy != first.Avatar.Energy {
		t.Fatalf("energy changed on repeated completion: %d != %d", a.Energy, first.Avatar.Energy)
	}
}

func TestCompleteHabitNotFound(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CompleteHabit(context.Background(), "nope"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("err=%v, want ErrHabitNotFound", err)
	}
}

func TestStatsClampAt100(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{Name: "Mega", EnergyBoost: 500, ConnectionBoost: 500, SkillBoost: 500})
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	res, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Avatar.Energy != 100 || res.Avatar.Connection != 100 || res.Avatar.Skill != 100 {
		t.Fatalf("stats=%d/%d/%d, want clamp at 100", res.Avatar.Energy, res.Avatar.Connection, res.Avatar.Skill)
	}
}

func TestLevelUpAtMultiplesOfFive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		h, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{Name: "H", EnergyBoost: 1})
		if err != nil {
			t.Fatalf("add custom: %v", err)
		}
		ids = append(ids, h.ID)
	}

	for i, id := range ids {
		res, err := svc.CompleteHabit(ctx, id)
		if err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
		wantUp := i == 4
		if res.LevelUp != wantUp {
			t.Fatalf("completion %d levelUp=%v, want %v", i+1, res.LevelUp, wantUp)
		}
		if wantUp && res.LevelAfter != 2 {
			t.Fatalf("level=%d after 5 completions, want 2", res.LevelAfter)
		}
	}
}

func TestRolloverResetsCompletedOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CompleteHabit(ctx, "deep-work"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	rolled, err := svc.RolloverIfNewDay(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !rolled {
		t.Fatalf("expected rollover on new day")
	}

	h, err := svc.HabitRepo().Get(ctx, "deep-work")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if h.Completed {
		t.Fatalf("completed flag survived rollover")
	}
	if h.Streak != 1 {
		t.Fatalf("streak=%d after rollover, want 1 (untouched)", h.Streak)
	}
	if h.Date != "2026-08-30" {
		t.Fatalf("date=%q, want 2026-08-30", h.Date)
	}

	rolled, err = svc.RolloverIfNewDay(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if rolled {
		t.Fatalf("same-day rollover should be a no-op")
	}
}

func TestAddCustomAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{Name: "  "}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err=%v, want ErrEmptyName", err)
	}

	h1, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{Name: "Read"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	h2, err := svc.AddCustom(ctx, "2026-08-29", AddHabitInput{Name: "Read"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if h1.ID == h2.ID {
		t.Fatalf("duplicate generated id %q", h1.ID)
	}

	if err := svc.DeleteHabit(ctx, h1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteHabit(ctx, h1.ID); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("second delete err=%v, want ErrHabitNotFound", err)
	}
}

func TestToggleDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	selected, err := svc.ToggleDefault(ctx, "2026-08-29", "move-body")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if selected {
		t.Fatalf("expected habit deselected")
	}
	if h, _ := svc.HabitRepo().Get(ctx, "move-body"); h != nil {
		t.Fatalf("habit still present after toggle off")
	}

	selected, err = svc.ToggleDefault(ctx, "2026-08-29", "move-body")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !selected {
		t.Fatalf("expected habit reselected")
	}

	if _, err := svc.ToggleDefault(ctx, "2026-08-29", "not-a-default"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("err=%v, want ErrHabitNotFound", err)
	}
}

func TestBattleReportWinPotion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := &battle.Resolution{ShadowID: "doubt", Day: 1, Score: 100, Won: true, Outcome: battle.OutcomePotion, LifeDelta: 2}
	out, err := svc.ApplyBattleReport(ctx, res)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Lives != 2 {
		t.Fatalf("lives=%d, want 2", out.Lives)
	}
	if !out.HabitCompleted {
		t.Fatalf("expected combat habit completion")
	}
	if out.HabitResult == nil || out.HabitResult.AwardApplied == nil {
		t.Fatalf("expected award consumed by habit completion")
	}
	if !out.UnlockFlagSet {
		t.Fatalf("expected unlock flag on win")
	}

	unlocked, err := svc.FlagRepo().Get(ctx, storage.FlagShadowPathUnlocked)
	if err != nil {
		t.Fatalf("flag get: %v", err)
	}
	if !unlocked {
		t.Fatalf("unlock flag not persisted")
	}

	// Award must be gone: completing another habit applies nothing.
	hr, err := svc.CompleteHabit(ctx, "morning-sunlight")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if hr.AwardApplied != nil {
		t.Fatalf("award applied twice")
	}
}

func TestBattleReportWinPoisonLeavesLives(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := &battle.Resolution{ShadowID: "doubt", Day: 1, Score: 100, Won: true, Outcome: battle.OutcomePoison, LifeDelta: 0}
	out, err := svc.ApplyBattleReport(ctx, res)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Lives != 0 {
		t.Fatalf("lives=%d after poison, want 0", out.Lives)
	}
	if !out.HabitCompleted {
		t.Fatalf("poison win still completes the combat habit")
	}
	if !out.UnlockFlagSet {
		t.Fatalf("poison win still sets unlock flag")
	}
}

func TestBattleReportLossChangesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.ShadowRepo().SetLives(ctx, "doubt", 3); err != nil {
		t.Fatalf("set lives: %v", err)
	}

	res := &battle.Resolution{ShadowID: "doubt", Day: 4, Score: 50}
	out, err := svc.ApplyBattleReport(ctx, res)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Lives != 3 {
		t.Fatalf("lives=%d after loss, want 3", out.Lives)
	}
	if out.HabitCompleted || out.UnlockFlagSet {
		t.Fatalf("loss must not complete habit or set flag")
	}

	h, err := svc.HabitRepo().Get(ctx, CombatHabitID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if h.Completed {
		t.Fatalf("combat habit completed on loss")
	}
}

func TestCaptureAtSevenLives(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.ShadowRepo().SetLives(ctx, "doubt", 6); err != nil {
		t.Fatalf("set lives: %v", err)
	}

	res := &battle.Resolution{ShadowID: "doubt", Day: 7, Score: 100, Won: true, Outcome: battle.OutcomePotion, LifeDelta: 2}
	out, err := svc.ApplyBattleReport(ctx, res)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Lives != 7 {
		t.Fatalf("lives=%d, want capped 7", out.Lives)
	}
	if !out.Captured {
		t.Fatalf("expected capture at 7 lives")
	}

	a, err := svc.Avatar(ctx)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if a.ShadowsDefeated != 1 {
		t.Fatalf("shadowsDefeated=%d, want 1", a.ShadowsDefeated)
	}

	captured, err := svc.ShadowRepo().IsCaptured(ctx, "doubt")
	if err != nil {
		t.Fatalf("is captured: %v", err)
	}
	if !captured {
		t.Fatalf("captured set not persisted")
	}
}

func TestBattleReportWhenCombatHabitAlreadyDone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CompleteHabit(ctx, CombatHabitID); err != nil {
		t.Fatalf("pre-complete: %v", err)
	}

	res := &battle.Resolution{ShadowID: "doubt", Day: 1, Score: 100, Won: true, Outcome: battle.OutcomePotion, LifeDelta: 2}
	out, err := svc.ApplyBattleReport(ctx, res)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.HabitCompleted {
		t.Fatalf("habit cannot complete twice")
	}
	// Award is consumed by the report itself.
	if out.Lives != 2 {
		t.Fatalf("lives=%d, want 2", out.Lives)
	}
	hr, err := svc.CompleteHabit(ctx, "morning-sunlight")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if hr.AwardApplied != nil {
		t.Fatalf("award leaked to a later completion")
	}
}

func TestAvatarStreakIncrementsOncePerDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CompleteHabit(ctx, "morning-sunlight"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.CompleteHabit(ctx, "deep-work"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	a, err := svc.Avatar(ctx)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if a.Streak != 1 {
		t.Fatalf("streak=%d after two same-day completions, want 1", a.Streak)
	}

	if _, err := svc.RolloverIfNewDay(ctx, "2026-08-30"); err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if _, err := svc.CompleteHabit(ctx, "morning-sunlight"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	a, err = svc.Avatar(ctx)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if a.Streak != 2 {
		t.Fatalf("streak=%d after next-day completion, want 2", a.Streak)
	}
}
