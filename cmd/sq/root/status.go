package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show avatar stats, level and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a, err := svc.Avatar(ctx)
			if err != nil {
				return err
			}
			completed, total, err := svc.Progress(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconAvatar, "Avatar"))
			fmt.Fprintln(out, ui.LabelValue("Level", a.Level))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s", a.Streak, ui.IconFlame)))
			fmt.Fprintln(out, ui.LabelValue("Habits completed", a.TotalCompleted))
			fmt.Fprintln(out, ui.LabelValue("Shadows defeated", a.ShadowsDefeated))
			if a.DayZero {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconSparkle+" Day-zero boost active: rewards ×2"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Attributes"))
			fmt.Fprintf(out, "- ⚡ Energy     %3d %s\n", a.Energy, ui.StatBar(a.Energy, engine.StatMax, 20))
			fmt.Fprintf(out, "- 💬 Connection %3d %s\n", a.Connection, ui.StatBar(a.Connection, engine.StatMax, 20))
			fmt.Fprintf(out, "- 🎯 Skill      %3d %s\n", a.Skill, ui.StatBar(a.Skill, engine.StatMax, 20))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d habits done", completed, total)))

			next := engine.HabitsPerLevel - a.TotalCompleted%engine.HabitsPerLevel
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d completions to the next level", next)))
			return nil
		},
	}
	return cmd
}
