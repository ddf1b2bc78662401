package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/ui"
)

func newDayZeroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayzero <on|off>",
		Short: "Toggle the day-zero 2× reward boost",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("argument must be 'on' or 'off'")
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

			active := args[0] == "on"
			if err := svc.SetDayZero(ctx, active); err != nil {
				return err
			}
			if active {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconSparkle+" Day-zero boost on: rewards ×2"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Day-zero boost off."))
			}
			return nil
		},
	}
	return cmd
}
