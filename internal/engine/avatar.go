package engine

import (
	"context"
	"fmt"

	"shadowquest/internal/storage"
)

const (
	// StatMax caps every avatar attribute.
	StatMax = 100
	// HabitsPerLevel is the completion count between level-ups.
	HabitsPerLevel = 5
	// DayZeroMultiplier doubles rewards while the day-zero boost is active.
	DayZeroMultiplier = 2
)

type CompleteResult struct {
	HabitID     string
	HabitName   string
	Multiplier  int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Avatar      storage.Avatar
	// AwardApplied is set when this completion consumed a pending battle
	// life award.
	AwardApplied   *storage.LifeAward
	ShadowCaptured bool
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// levelFor is the level implied by a completion total.
func levelFor(totalCompleted int) int {
	return totalCompleted/HabitsPerLevel + 1
}

// CompleteHabit marks the habit done for today and applies its reward tuple
// to the avatar. It is idempotent: a second call on the same id reports
// ErrAlreadyCompleted and changes nothing.
func (s *Service) CompleteHabit(ctx context.Context, habitID string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeHabit(ctx, habitID)
}

func (s *Service) completeHabit(ctx context.Context, habitID string) (*CompleteResult, error) {
	a, err := s.avatars.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	h, err := s.habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	if h.Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, habitID)
	}

	firstToday, err := s.noneCompletedToday(ctx)
	if err != nil {
		return nil, err
	}

	mult := 1
	if a.DayZero {
		mult = DayZeroMultiplier
	}
	a.Energy = clampStat(a.Energy + h.EnergyBoost*mult)
	a.Connection = clampStat(a.Connection + h.ConnectionBoost*mult)
	a.Skill = clampStat(a.Skill + h.SkillBoost*mult)

	levelBefore := a.Level
	a.TotalCompleted++
	levelUp := false
	if a.TotalCompleted%HabitsPerLevel == 0 {
		if newLevel := levelFor(a.TotalCompleted); newLevel > a.Level {
			a.Level = newLevel
			levelUp = true
		}
	}
	if firstToday {
		a.Streak++
	}

	if err := s.habits.MarkCompleted(ctx, h.ID, h.Streak+1); err != nil {
		return nil, err
	}

	award, captured, err := s.applyPendingAward(ctx, a)
	if err != nil {
		return nil, err
	}

	if err := s.avatars.Update(ctx, a); err != nil {
		return nil, err
	}

	return &CompleteResult{
		HabitID:        h.ID,
		HabitName:      h.Name,
		Multiplier:     mult,
		LevelBefore:    levelBefore,
		LevelAfter:     a.Level,
		LevelUp:        levelUp,
		Avatar:         *a,
		AwardApplied:   award,
		ShadowCaptured: captured,
	}, nil
}

func (s *Service) noneCompletedToday(ctx context.Context) (bool, error) {
	all, err := s.habits.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range all {
		if all[i].Completed {
			return false, nil
		}
	}
	return true, nil
}

// SetDayZero toggles the reward multiplier. Already-applied rewards are not
// rescaled.
func (s *Service) SetDayZero(ctx context.Context, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.avatars.GetOrCreateMain(ctx)
	if err != nil {
		return err
	}
	a.DayZero = active
	return s.avatars.Update(ctx, a)
}

// Avatar returns the current avatar snapshot, creating it on first use.
func (s *Service) Avatar(ctx context.Context) (*storage.Avatar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avatars.GetOrCreateMain(ctx)
}

// Progress reports today's completed and total habit counts.
func (s *Service) Progress(ctx context.Context) (completed, total int, err error) {
	all, err := s.habits.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	for i := range all {
		if all[i].Completed {
			completed++
		}
	}
	return completed, len(all), nil
}
