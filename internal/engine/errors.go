package engine

import "errors"

var (
	// ErrHabitNotFound indicates the referenced id resolves to no habit.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrAlreadyCompleted is the idempotency guard: completing a completed
	// habit is reported but changes nothing.
	ErrAlreadyCompleted = errors.New("habit already completed today")
	// ErrEmptyName indicates a custom habit needs a name.
	ErrEmptyName = errors.New("habit name is required")
	// ErrEmptyEntry indicates a journal entry needs text.
	ErrEmptyEntry = errors.New("journal entry is required")
)
