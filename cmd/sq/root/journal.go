package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newJournalCmd() *cobra.Command {
	var habitID string

	cmd := &cobra.Command{
		Use:   "journal [entry]",
		Short: "Append to or read today's journal",
		Long:  "With arguments, appends a reflection (optionally tied to a habit via --habit). Without arguments, lists today's entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := engine.Today()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				entries, err := svc.JournalByDate(ctx, today)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Journal — "+today))
				if len(entries) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(no entries yet)"))
					return nil
				}
				for _, e := range entries {
					prefix := e.CreatedAt.Local().Format("15:04")
					if e.HabitName != "" {
						prefix += " · " + e.HabitName
					}
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render("["+prefix+"]"), e.Entry)
				}
				return nil
			}

			e, err := svc.AppendJournal(ctx, today, habitID, strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, engine.ErrHabitNotFound) {
					return fmt.Errorf("unknown habit %q", habitID)
				}
				return err
			}
			fmt.Fprintf(out, "%s Noted for %s.\n", ui.IconScroll, e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&habitID, "habit", "", "habit id this entry reflects on")
	return cmd
}
