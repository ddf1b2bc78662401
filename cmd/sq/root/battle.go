package root

import (
	"context"

	"github.com/spf13/cobra"

	"shadowquest/internal/tui"
)

func newBattleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Fight a shadow (quiz, focus action, treasure)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBattle(ctx, svc, nil, cmd.OutOrStdout())
		},
	}
	return cmd
}
