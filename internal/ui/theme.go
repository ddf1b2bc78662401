package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shadowquest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconAvatar  = "🧝"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconSword   = "⚔️"
	IconShadow  = "👤"
	IconPotion  = "🧪"
	IconPoison  = "☠️"
	IconFlame   = "🔥"
	IconScroll  = "📜"
	IconWarn    = "⚠️"
	IconInfo    = "ℹ️"
	IconLock    = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("129") // purple, the shadows' color
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	ShadowName  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)

	BadgeLevelUp  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeCaptured = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Render("SHADOW CAPTURED")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatBar renders a 0..max attribute as a fixed-width bar.
func StatBar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := value * width / max
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Lives renders a shadow's life track, e.g. ●●●○○○○.
func Lives(defeated, total int) string {
	if defeated < 0 {
		defeated = 0
	}
	if defeated > total {
		defeated = total
	}
	return Good.Render(strings.Repeat("●", defeated)) + Muted.Render(strings.Repeat("○", total-defeated))
}
