package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/battle"
	"shadowquest/internal/ui"
)

func newShadowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shadows",
		Short: "Show shadow capture progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses, err := svc.ShadowStatuses(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShadow, "Shadows"))
			for _, s := range statuses {
				name := ui.ShadowName.Render(s.Shadow.Name)
				switch {
				case !s.Shadow.Enabled:
					fmt.Fprintf(out, "- %s %s %s\n", name, ui.IconLock, ui.Muted.Render("coming soon"))
				case s.Captured:
					fmt.Fprintf(out, "- %s %s\n", name, ui.BadgeCaptured)
				default:
					fmt.Fprintf(out, "- %s %s %s\n", name, ui.Lives(s.Lives, battle.LivesToCapture),
						ui.Muted.Render(fmt.Sprintf("days 1–%d unlocked", s.DaysUnlocked)))
				}
				if s.Shadow.Tagline != "" && s.Shadow.Enabled {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render(s.Shadow.Tagline))
				}
			}
			return nil
		},
	}
	return cmd
}
