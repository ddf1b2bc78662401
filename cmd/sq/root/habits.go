package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	var showInfo bool

	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List today's habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.ListHabits(ctx, engine.Today())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Today's Habits"))
			for _, h := range habits {
				mark := "· "
				if h.Completed {
					mark = ui.IconDone + " "
				}
				boosts := fmt.Sprintf("⚡%d 💬%d 🎯%d", h.EnergyBoost, h.ConnectionBoost, h.SkillBoost)
				streak := ""
				if h.Streak > 0 {
					streak = ui.Warn.Render(fmt.Sprintf(" %s%d", ui.IconFlame, h.Streak))
				}
				fmt.Fprintf(out, "%s%s %s  %s%s  %s\n", mark, h.Icon, h.Name, ui.Muted.Render(boosts), streak, ui.Muted.Render("("+h.ID+")"))
				if showInfo && (h.Info.WhyDo != "" || h.Info.HowDo != "") {
					if h.Info.WhyDo != "" {
						fmt.Fprintf(out, "    %s %s\n", ui.Key.Render("why:"), h.Info.WhyDo)
					}
					if h.Info.HowDo != "" {
						fmt.Fprintf(out, "    %s %s\n", ui.Key.Render("how:"), h.Info.HowDo)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showInfo, "info", false, "show why/how guidance for each habit")
	return cmd
}
