package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <habit-id>",
		Short: "Toggle a default habit in or out of today's set",
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

			selected, err := svc.ToggleDefault(ctx, engine.Today(), args[0])
			if err != nil {
				return err
			}
			if selected {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is back on today's list.\n", ui.IconDone, args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s removed from today's list.\n", ui.IconScroll, args[0])
			}
			return nil
		},
	}
	return cmd
}
