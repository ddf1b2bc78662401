package engine

import "shadowquest/internal/storage"

// CombatHabitID is the habit auto-completed by a winning battle.
const CombatHabitID = "combat-shadows"

// DefaultHabits is the starting catalog seeded on first run.
func DefaultHabits(today string) []storage.Habit {
	return []storage.Habit{
		{
			ID:          "morning-sunlight",
			Name:        "Morning sunlight",
			Icon:        "☀️",
			Description: "Get outside within an hour of waking.",
			EnergyBoost: 5,
			Date:        today,
			Info: storage.HabitInfo{
				WhyDo: "Early light anchors your body clock and lifts daytime energy.",
				HowDo: "Ten minutes outdoors, no sunglasses, before your first screen.",
			},
		},
		{
			ID:              "reach-out",
			Name:            "Reach out to someone",
			Icon:            "💬",
			Description:     "One real message or call, not a like.",
			ConnectionBoost: 5,
			Date:            today,
			Info: storage.HabitInfo{
				WhyDo: "Relationships decay quietly without small deposits.",
				HowDo: "Pick one person and ask a question you actually want answered.",
			},
		},
		{
			ID:          "deep-work",
			Name:        "Deep work block",
			Icon:        "🎯",
			Description: "25 undistracted minutes on one thing that matters.",
			SkillBoost:  5,
			Date:        today,
			Info: storage.HabitInfo{
				WhyDo: "Focused reps are how skill compounds.",
				HowDo: "Phone in another room, one target, timer on.",
			},
		},
		{
			ID:              "move-body",
			Name:            "Move your body",
			Icon:            "🏃",
			Description:     "Any deliberate movement for 20 minutes.",
			EnergyBoost:     4,
			ConnectionBoost: 1,
			Date:            today,
			Info: storage.HabitInfo{
				WhyDo: "Movement is the cheapest mood and energy lever you have.",
				HowDo: "Walk, stretch, lift, dance. Count anything deliberate.",
			},
		},
		{
			ID:          CombatHabitID,
			Name:        "Combat the shadows",
			Icon:        "⚔️",
			Description: "Face one shadow battle today.",
			EnergyBoost: 2,
			SkillBoost:  3,
			Date:        today,
			Info: storage.HabitInfo{
				WhyDo: "Naming what holds you back is half of beating it.",
				HowDo: "Run `sq battle` and pick an unlocked day.",
			},
		},
	}
}
