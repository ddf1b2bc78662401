package engine

import (
	"database/sql"
	"sync"

	"shadowquest/internal/storage"
)

// Service owns all mutable progression state. Every mutating operation takes
// the service mutex, so no two completions can interleave their
// read-modify-write of avatar or shadow state.
type Service struct {
	mu sync.Mutex

	db      *sql.DB
	avatars *storage.AvatarRepo
	habits  *storage.HabitRepo
	shadows *storage.ShadowRepo
	journal *storage.JournalRepo
	awards  *storage.AwardRepo
	flags   *storage.FlagRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:      db,
		avatars: storage.NewAvatarRepo(db),
		habits:  storage.NewHabitRepo(db),
		shadows: storage.NewShadowRepo(db),
		journal: storage.NewJournalRepo(db),
		awards:  storage.NewAwardRepo(db),
		flags:   storage.NewFlagRepo(db),
	}
}

func (s *Service) AvatarRepo() *storage.AvatarRepo   { return s.avatars }
func (s *Service) HabitRepo() *storage.HabitRepo     { return s.habits }
func (s *Service) ShadowRepo() *storage.ShadowRepo   { return s.shadows }
func (s *Service) JournalRepo() *storage.JournalRepo { return s.journal }
func (s *Service) FlagRepo() *storage.FlagRepo       { return s.flags }
