package storage

import "time"

type Avatar struct {
	Key             string
	Level           int
	Energy          int
	Connection      int
	Skill           int
	Streak          int
	TotalCompleted  int
	DayZero         bool
	ShadowsDefeated int
}

// HabitInfo is the free-form guidance blob attached to a habit. It is stored
// as JSON; a corrupt blob decodes to the zero value rather than failing the row.
type HabitInfo struct {
	WhyDo string `json:"whyDo"`
	HowDo string `json:"howDo"`
}

type Habit struct {
	ID              string
	Name            string
	Icon            string
	Description     string
	EnergyBoost     int
	ConnectionBoost int
	SkillBoost      int
	Completed       bool
	Streak          int
	Date            string
	Info            HabitInfo
}

type JournalEntry struct {
	ID        int64
	Date      string
	HabitID   string
	HabitName string
	Entry     string
	CreatedAt time.Time
}

// LifeAward is a single-use life grant handed from a won battle to the next
// habit completion.
type LifeAward struct {
	ShadowID string
	Lives    int
}
