package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "Shadowquest — grow your avatar, keep your streak, capture the shadows",
	Long:          "Shadowquest is a local-first gamified habit tracker: completing habits grows your avatar, and quiz battles against narrative shadows mark your progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newStatusCmd(),
		newHabitsCmd(),
		newDoneCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newToggleCmd(),
		newBattleCmd(),
		newShadowsCmd(),
		newJournalCmd(),
		newChatCmd(),
		newDayZeroCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
