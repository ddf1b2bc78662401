package battle

// Shadow is a static catalog entry. livesDefeated/captured live in storage;
// the catalog only says which shadows exist and which are playable.
type Shadow struct {
	ID      string
	Name    string
	Tagline string
	Enabled bool
}

var shadowCatalog = []Shadow{
	{ID: "doubt", Name: "Shadow of Doubt", Tagline: "The voice that says you can't.", Enabled: true},
	{ID: "distraction", Name: "Shadow of Distraction", Tagline: "A thousand tiny hooks.", Enabled: true},
	{ID: "isolation", Name: "Shadow of Isolation", Tagline: "Coming soon.", Enabled: false},
	{ID: "burnout", Name: "Shadow of Burnout", Tagline: "Coming soon.", Enabled: false},
}

func Shadows() []Shadow {
	out := make([]Shadow, len(shadowCatalog))
	copy(out, shadowCatalog)
	return out
}

func FindShadow(id string) (*Shadow, error) {
	for i := range shadowCatalog {
		if shadowCatalog[i].ID == id {
			s := shadowCatalog[i]
			return &s, nil
		}
	}
	return nil, ErrUnknownShadow
}

func CanSelectShadow(s *Shadow) error {
	if !s.Enabled {
		return ErrShadowLocked
	}
	return nil
}

// CanSelectDay enforces the unlock ladder: day 1 is always open, day d needs
// d-1 accumulated lives.
func CanSelectDay(livesDefeated, day int) error {
	if day < 1 || day > LivesToCapture {
		return ErrInvalidDay
	}
	if day == 1 {
		return nil
	}
	if livesDefeated < day-1 {
		return DayLockedError{Day: day, RequiredLives: day - 1, CurrentLives: livesDefeated}
	}
	return nil
}

// DaysUnlocked returns how many battle days are currently selectable.
func DaysUnlocked(livesDefeated int) int {
	n := livesDefeated + 1
	if n > LivesToCapture {
		n = LivesToCapture
	}
	return n
}
