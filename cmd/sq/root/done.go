package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <habit-id>",
		Short: "Complete a habit for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteHabit(ctx, args[0])
			if err != nil {
				if errors.Is(err, engine.ErrAlreadyCompleted) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already completed today."))
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s completed", ui.IconDone, res.HabitName)
			if res.Multiplier > 1 {
				fmt.Fprintf(out, " %s", ui.Gold.Render(fmt.Sprintf("(×%d day-zero boost)", res.Multiplier)))
			}
			fmt.Fprintln(out)

			a := res.Avatar
			fmt.Fprintf(out, "⚡%d 💬%d 🎯%d · %d done total\n", a.Energy, a.Connection, a.Skill, a.TotalCompleted)
			if res.LevelUp {
				fmt.Fprintf(out, "%s → level %d\n", ui.BadgeLevelUp, res.LevelAfter)
			}
			if res.AwardApplied != nil {
				fmt.Fprintf(out, "%s A pending battle reward struck %s for %d lives.\n", ui.IconSword, res.AwardApplied.ShadowID, res.AwardApplied.Lives)
			}
			if res.ShadowCaptured {
				fmt.Fprintln(out, ui.BadgeCaptured)
			}
			return nil
		},
	}
	return cmd
}
