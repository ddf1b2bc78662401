package engine

import (
	"context"
	"errors"

	"shadowquest/internal/battle"
	"shadowquest/internal/storage"
)

// ShadowStatus joins the static catalog with persisted progress.
type ShadowStatus struct {
	Shadow       battle.Shadow
	Lives        int
	Captured     bool
	DaysUnlocked int
}

func (s *Service) ShadowStatuses(ctx context.Context) ([]ShadowStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.shadows.Progress(ctx)
	if err != nil {
		return nil, err
	}
	var out []ShadowStatus
	for _, sh := range battle.Shadows() {
		lives := progress[sh.ID]
		out = append(out, ShadowStatus{
			Shadow:       sh,
			Lives:        lives,
			Captured:     lives >= battle.LivesToCapture,
			DaysUnlocked: battle.DaysUnlocked(lives),
		})
	}
	return out, nil
}

// Lives returns the persisted livesDefeated for one shadow.
func (s *Service) Lives(ctx context.Context, shadowID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shadows.Lives(ctx, shadowID)
}

// BattleOutcome is what a settled battle did to persistent state.
type BattleOutcome struct {
	Resolution     battle.Resolution
	Lives          int
	Captured       bool
	HabitCompleted bool
	HabitResult    *CompleteResult
	UnlockFlagSet  bool
}

// ApplyBattleReport is the Reporting phase. A winning resolution hands its
// life delta to the progression engine as a single-use pending award, then
// completes the combat habit, whose completion consumes the award. If that
// habit is already done (or missing), the award is consumed here so it can
// never be read twice. The unlock flag is set on any win, independent of the
// treasure outcome. A losing resolution persists nothing.
func (s *Service) ApplyBattleReport(ctx context.Context, res *battle.Resolution) (*BattleOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &BattleOutcome{Resolution: *res}

	if !res.Won {
		lives, err := s.shadows.Lives(ctx, res.ShadowID)
		if err != nil {
			return nil, err
		}
		out.Lives = lives
		out.Captured = lives >= battle.LivesToCapture
		return out, nil
	}

	if res.LifeDelta > 0 {
		if err := s.awards.Put(ctx, storage.LifeAward{ShadowID: res.ShadowID, Lives: res.LifeDelta}); err != nil {
			return nil, err
		}
	}

	hr, err := s.completeHabit(ctx, CombatHabitID)
	switch {
	case err == nil:
		out.HabitCompleted = true
		out.HabitResult = hr
	case errors.Is(err, ErrAlreadyCompleted), errors.Is(err, ErrHabitNotFound):
		// Consume the award directly so it cannot linger.
		a, aerr := s.avatars.GetOrCreateMain(ctx)
		if aerr != nil {
			return nil, aerr
		}
		if _, _, aerr := s.applyPendingAward(ctx, a); aerr != nil {
			return nil, aerr
		}
		if aerr := s.avatars.Update(ctx, a); aerr != nil {
			return nil, aerr
		}
	default:
		return nil, err
	}

	if err := s.flags.Set(ctx, storage.FlagShadowPathUnlocked, true); err != nil {
		return nil, err
	}
	out.UnlockFlagSet = true

	lives, err := s.shadows.Lives(ctx, res.ShadowID)
	if err != nil {
		return nil, err
	}
	out.Lives = lives
	out.Captured = lives >= battle.LivesToCapture
	return out, nil
}

// applyPendingAward consumes the pending life award, if any, and applies it
// to the shadow it names. Lives never decrease and cap at the capture
// threshold; captured is recomputed, never set independently. The caller
// persists the avatar.
func (s *Service) applyPendingAward(ctx context.Context, a *storage.Avatar) (*storage.LifeAward, bool, error) {
	award, err := s.awards.Take(ctx)
	if err != nil {
		return nil, false, err
	}
	if award == nil || award.Lives <= 0 {
		return nil, false, nil
	}

	lives, err := s.shadows.Lives(ctx, award.ShadowID)
	if err != nil {
		return nil, false, err
	}
	lives += award.Lives
	if lives > battle.LivesToCapture {
		lives = battle.LivesToCapture
	}
	if err := s.shadows.SetLives(ctx, award.ShadowID, lives); err != nil {
		return nil, false, err
	}

	captured := false
	if lives >= battle.LivesToCapture {
		already, err := s.shadows.IsCaptured(ctx, award.ShadowID)
		if err != nil {
			return nil, false, err
		}
		if !already {
			if err := s.shadows.MarkCaptured(ctx, award.ShadowID); err != nil {
				return nil, false, err
			}
			a.ShadowsDefeated++
			captured = true
		}
	}
	return award, captured, nil
}
