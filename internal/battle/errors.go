package battle

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownShadow    = errors.New("unknown shadow")
	ErrShadowLocked     = errors.New("shadow is not yet available")
	ErrInvalidDay       = errors.New("battle day must be between 1 and 7")
	ErrNoBattle         = errors.New("no battle content for this shadow and day")
	ErrAnswerOutOfRange = errors.New("answer option out of range")
	ErrAlreadyAnswered  = errors.New("question already answered")
)

// DayLockedError indicates a battle day gated behind prior wins.
type DayLockedError struct {
	Day           int
	RequiredLives int
	CurrentLives  int
}

func (e DayLockedError) Error() string {
	return fmt.Sprintf("day %d unlocks after %d wins (currently %d)", e.Day, e.RequiredLives, e.CurrentLives)
}
