package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shadowquest/internal/storage"
)

// DateFormat is the calendar-date tag on habit rows.
const DateFormat = "2006-01-02"

// Today returns the current date tag.
func Today() string {
	return time.Now().Format(DateFormat)
}

// RolloverIfNewDay resets every habit's completed flag when the stored date
// differs from today. Streaks are untouched. This is the only mutation not
// triggered by a user action.
func (s *Service) RolloverIfNewDay(ctx context.Context, today string) (rolled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.habits.ResetForDate(ctx, today)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListHabits rolls the registry over to today and returns it.
func (s *Service) ListHabits(ctx context.Context, today string) ([]storage.Habit, error) {
	if _, err := s.RolloverIfNewDay(ctx, today); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.habits.List(ctx)
}

type AddHabitInput struct {
	Name            string
	Icon            string
	Description     string
	EnergyBoost     int
	ConnectionBoost int
	SkillBoost      int
	Info            storage.HabitInfo
}

// AddCustom creates a user-defined habit for today with a generated id that
// cannot collide with an existing one.
func (s *Service) AddCustom(ctx context.Context, today string, in AddHabitInput) (*storage.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	if in.EnergyBoost < 0 || in.ConnectionBoost < 0 || in.SkillBoost < 0 {
		return nil, fmt.Errorf("habit boosts must not be negative")
	}

	var id string
	for {
		id = "custom-" + uuid.NewString()
		existing, err := s.habits.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
	}

	h := &storage.Habit{
		ID:              id,
		Name:            in.Name,
		Icon:            in.Icon,
		Description:     in.Description,
		EnergyBoost:     in.EnergyBoost,
		ConnectionBoost: in.ConnectionBoost,
		SkillBoost:      in.SkillBoost,
		Date:            today,
		Info:            in.Info,
	}
	if err := s.habits.Insert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// ToggleDefault flips a default-catalog habit in or out of today's set:
// present removes it, absent re-installs it from the catalog with a fresh
// streak. Returns whether the habit is selected after the call.
func (s *Service) ToggleDefault(ctx context.Context, today, habitID string) (selected bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.habits.Get(ctx, habitID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err := s.habits.Delete(ctx, habitID); err != nil {
			return false, err
		}
		return false, nil
	}

	for _, h := range DefaultHabits(today) {
		if h.ID == habitID {
			if err := s.habits.Insert(ctx, &h); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
}

// DeleteHabit removes a habit by id.
func (s *Service) DeleteHabit(ctx context.Context, habitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.habits.Delete(ctx, habitID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	return nil
}

// SeedDefaults installs the default habit catalog on first run.
func (s *Service) SeedDefaults(ctx context.Context, today string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.habits.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, h := range DefaultHabits(today) {
		if err := s.habits.Insert(ctx, &h); err != nil {
			return err
		}
	}
	return nil
}
