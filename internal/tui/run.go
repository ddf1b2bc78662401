package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"shadowquest/internal/battle"
	"shadowquest/internal/engine"
)

func RunBattle(ctx context.Context, svc *engine.Service, rng battle.Rand, out io.Writer) error {
	m := newBattleModel(ctx, svc, rng)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(battleModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
