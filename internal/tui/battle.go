package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shadowquest/internal/battle"
	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

const (
	feedbackDelay  = 2 * time.Second
	actingInterval = time.Second
)

type phase int

const (
	phaseLoading phase = iota
	phasePickShadow
	phasePickDay
	phaseQuiz
	phaseFeedback
	phaseActing
	phaseResult
)

type battleModel struct {
	ctx context.Context
	svc *engine.Service
	rng battle.Rand

	phase phase
	// seq tags timer messages with the attempt they belong to; a tick from
	// an abandoned attempt is dropped instead of firing a stale transition.
	seq int

	statuses []engine.ShadowStatus
	cursor   int
	chosen   engine.ShadowStatus
	day      int

	attempt  *battle.Attempt
	feedback *battle.AnswerResult
	outcome  *engine.BattleOutcome

	lastLog string
	err     error
}

type loadedMsg struct {
	statuses []engine.ShadowStatus
	err      error
}

type feedbackDoneMsg struct{ seq int }

type actingTickMsg struct{ seq int }

type reportedMsg struct {
	out *engine.BattleOutcome
	err error
}

func newBattleModel(ctx context.Context, svc *engine.Service, rng battle.Rand) battleModel {
	return battleModel{
		ctx:   ctx,
		svc:   svc,
		rng:   rng,
		phase: phaseLoading,
		day:   1,
	}
}

func (m battleModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m battleModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		statuses, err := m.svc.ShadowStatuses(m.ctx)
		return loadedMsg{statuses: statuses, err: err}
	}
}

func (m battleModel) feedbackCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

func (m battleModel) actingCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(actingInterval, func(time.Time) tea.Msg {
		return actingTickMsg{seq: seq}
	})
}

func (m battleModel) reportCmd(res *battle.Resolution) tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.ApplyBattleReport(m.ctx, res)
		return reportedMsg{out: out, err: err}
	}
}

// abandon cancels the running attempt: bumping seq orphans any scheduled
// timer message.
func (m battleModel) abandon() (battleModel, tea.Cmd) {
	m.seq++
	m.attempt = nil
	m.feedback = nil
	m.outcome = nil
	m.phase = phaseLoading
	m.lastLog = "Battle abandoned."
	return m, m.loadCmd()
}

func (m battleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.statuses = msg.statuses
		m.phase = phasePickShadow
		if m.cursor >= len(m.statuses) {
			m.cursor = 0
		}
		return m, nil

	case feedbackDoneMsg:
		if msg.seq != m.seq || m.phase != phaseFeedback {
			return m, nil
		}
		m.feedback = nil
		if err := m.attempt.Advance(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.attempt.State() == battle.StateActing {
			m.phase = phaseActing
			return m, m.actingCmd()
		}
		m.phase = phaseQuiz
		return m, nil

	case actingTickMsg:
		if msg.seq != m.seq || m.phase != phaseActing {
			return m, nil
		}
		remaining, err := m.attempt.TickActing()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if remaining > 0 {
			return m, m.actingCmd()
		}
		res, err := m.attempt.Resolve()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.reportCmd(res)

	case reportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.outcome = msg.out
		m.phase = phaseResult
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m battleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phasePickShadow:
		switch key {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.statuses)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < 0 || m.cursor >= len(m.statuses) {
				return m, nil
			}
			s := m.statuses[m.cursor]
			if !s.Shadow.Enabled {
				m.lastLog = s.Shadow.Name + " is not available yet."
				return m, nil
			}
			if s.Captured {
				m.lastLog = s.Shadow.Name + " is already captured."
				return m, nil
			}
			m.chosen = s
			m.day = s.DaysUnlocked
			m.phase = phasePickDay
			m.lastLog = ""
		}
		return m, nil

	case phasePickDay:
		switch key {
		case "esc", "q":
			m.phase = phasePickShadow
			return m, nil
		case "left", "h":
			if m.day > 1 {
				m.day--
			}
		case "right", "l":
			if m.day < battle.LivesToCapture {
				m.day++
			}
		case "enter":
			attempt, err := battle.NewAttempt(m.chosen.Shadow.ID, m.day, m.chosen.Lives, m.rng)
			if err != nil {
				m.lastLog = err.Error()
				return m, nil
			}
			m.seq++
			m.attempt = attempt
			m.phase = phaseQuiz
			m.lastLog = ""
		}
		return m, nil

	case phaseQuiz:
		switch key {
		case "esc":
			return m.abandon()
		case "1", "2", "3", "4":
			option := int(key[0] - '1')
			res, err := m.attempt.Answer(option)
			if err != nil {
				m.lastLog = err.Error()
				return m, nil
			}
			m.feedback = res
			m.phase = phaseFeedback
			return m, m.feedbackCmd()
		}
		return m, nil

	case phaseFeedback, phaseActing:
		if key == "esc" {
			return m.abandon()
		}
		return m, nil

	case phaseResult:
		switch key {
		case "q", "enter":
			return m, tea.Quit
		case "b":
			m.seq++
			m.attempt = nil
			m.outcome = nil
			m.phase = phaseLoading
			return m, m.loadCmd()
		}
		return m, nil
	}
	return m, nil
}

func (m battleModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconSword, "Shadow Battle") + "\n\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString("Loading…\n")
	case phasePickShadow:
		b.WriteString(m.viewPickShadow())
	case phasePickDay:
		b.WriteString(m.viewPickDay())
	case phaseQuiz:
		b.WriteString(m.viewQuiz())
	case phaseFeedback:
		b.WriteString(m.viewFeedback())
	case phaseActing:
		b.WriteString(m.viewActing())
	case phaseResult:
		b.WriteString(m.viewResult())
	}

	if m.lastLog != "" {
		b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	}
	return b.String()
}

func (m battleModel) viewPickShadow() string {
	var out []string
	out = append(out, ui.H2.Render("Choose your opponent"))
	for i, s := range m.statuses {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		name := ui.ShadowName.Render(s.Shadow.Name)
		suffix := ui.Lives(s.Lives, battle.LivesToCapture)
		if !s.Shadow.Enabled {
			suffix = ui.Muted.Render(ui.IconLock + " coming soon")
		} else if s.Captured {
			suffix = ui.BadgeCaptured
		}
		line := fmt.Sprintf("%s%s %s  %s", cursor, ui.IconShadow, name, suffix)
		if i == m.cursor {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	out = append(out, "", ui.Muted.Render("j/k: move · enter: select · q: quit"))
	return strings.Join(out, "\n") + "\n"
}

func (m battleModel) viewPickDay() string {
	var out []string
	out = append(out, ui.H2.Render("Choose a battle day — "+m.chosen.Shadow.Name))
	var days []string
	for d := 1; d <= battle.LivesToCapture; d++ {
		label := fmt.Sprintf(" %d ", d)
		locked := battle.CanSelectDay(m.chosen.Lives, d) != nil
		switch {
		case d == m.day && locked:
			label = ui.Bad.Render("[" + label + ui.IconLock + "]")
		case d == m.day:
			label = ui.SelectedRow.Render("[" + label + "]")
		case locked:
			label = ui.Muted.Render(label + ui.IconLock)
		}
		days = append(days, label)
	}
	out = append(out, strings.Join(days, " "))
	out = append(out, "", ui.Muted.Render("h/l: move · enter: fight · esc: back"))
	return strings.Join(out, "\n") + "\n"
}

func (m battleModel) viewQuiz() string {
	q, err := m.attempt.Question()
	if err != nil {
		return err.Error() + "\n"
	}
	var out []string
	out = append(out, ui.H2.Render(fmt.Sprintf("Question %d of %d — %s", m.attempt.QuestionNumber(), battle.QuestionsPerBattle, m.attempt.Battle().Title)))
	out = append(out, "", q.Prompt, "")
	for i, opt := range q.Options {
		out = append(out, fmt.Sprintf("  %s %s", ui.Key.Render(fmt.Sprintf("%d)", i+1)), opt))
	}
	out = append(out, "", ui.Muted.Render("1-4: answer · esc: abandon"))
	return strings.Join(out, "\n") + "\n"
}

func (m battleModel) viewFeedback() string {
	if m.feedback == nil {
		return ""
	}
	var out []string
	if m.feedback.Correct {
		out = append(out, ui.Good.Render(ui.IconDone+" Correct!"))
	} else {
		out = append(out, ui.Bad.Render("✗ Not quite."))
	}
	out = append(out, "", m.feedback.Explanation)
	return strings.Join(out, "\n") + "\n"
}

func (m battleModel) viewActing() string {
	remaining := m.attempt.ActingRemaining()
	var out []string
	out = append(out, ui.H2.Render(ui.IconFlame+" Focus action"))
	out = append(out, "", "Hold your ground. Breathe.")
	out = append(out, "", ui.StatBar(battle.ActingTicks-remaining, battle.ActingTicks, 20)+fmt.Sprintf("  %ds", remaining))
	return strings.Join(out, "\n") + "\n"
}

func (m battleModel) viewResult() string {
	if m.outcome == nil {
		return ""
	}
	res := m.outcome.Resolution
	var out []string
	out = append(out, ui.H2.Render("Battle report — "+m.chosen.Shadow.Name))
	out = append(out, "", ui.LabelValue("Score", fmt.Sprintf("%d%%", res.Score)))

	if res.Won {
		switch res.Outcome {
		case battle.OutcomePotion:
			out = append(out, ui.Good.Render(ui.IconPotion+" Potion! The shadow loses 2 lives."))
		case battle.OutcomePoison:
			out = append(out, ui.Warn.Render(ui.IconPoison+" Poison… the victory slips away. No lives lost."))
		}
	} else {
		out = append(out, ui.Muted.Render("The shadow holds. No harm done — this day can be replayed."))
	}

	out = append(out, "", ui.LabelValue("Lives defeated", ui.Lives(m.outcome.Lives, battle.LivesToCapture)))
	if m.outcome.Captured {
		out = append(out, "", ui.BadgeCaptured)
	}
	if m.outcome.HabitResult != nil {
		out = append(out, "", ui.Good.Render(ui.IconDone+" \"Combat the shadows\" completed for today."))
		if m.outcome.HabitResult.LevelUp {
			out = append(out, ui.BadgeLevelUp+fmt.Sprintf(" → level %d", m.outcome.HabitResult.LevelAfter))
		}
	}
	out = append(out, "", ui.Muted.Render("b: another battle · q/enter: leave"))
	return strings.Join(out, "\n") + "\n"
}
