package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/storage"
	"shadowquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		icon        string
		description string
		energy      int
		connection  int
		skill       int
		why         string
		how         string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("habit name is required")
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

			h, err := svc.AddCustom(ctx, engine.Today(), engine.AddHabitInput{
				Name:            strings.Join(args, " "),
				Icon:            icon,
				Description:     description,
				EnergyBoost:     energy,
				ConnectionBoost: connection,
				SkillBoost:      skill,
				Info:            storage.HabitInfo{WhyDo: why, HowDo: how},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconSparkle, h.Name, ui.Muted.Render("("+h.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "⭐", "habit icon")
	cmd.Flags().StringVar(&description, "desc", "", "habit description")
	cmd.Flags().IntVar(&energy, "energy", 0, "energy boost per completion")
	cmd.Flags().IntVar(&connection, "connection", 0, "connection boost per completion")
	cmd.Flags().IntVar(&skill, "skill", 0, "skill boost per completion")
	cmd.Flags().StringVar(&why, "why", "", "why this habit matters")
	cmd.Flags().StringVar(&how, "how", "", "how to do this habit")
	return cmd
}
