package engine

import (
	"context"
	"fmt"
	"strings"

	"shadowquest/internal/storage"
)

// AppendJournal records a reflection tied to a habit for the given date.
// Entries are append-only.
func (s *Service) AppendJournal(ctx context.Context, date, habitID, text string) (*storage.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyEntry
	}

	e := &storage.JournalEntry{Date: date, Entry: text}
	if habitID != "" {
		h, err := s.habits.Get(ctx, habitID)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
		}
		e.HabitID = h.ID
		e.HabitName = h.Name
	}

	id, err := s.journal.Append(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) JournalByDate(ctx context.Context, date string) ([]storage.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.ListByDate(ctx, date)
}
