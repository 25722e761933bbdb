package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arcadenexus/internal/ui"
)

const Version = "0.4.0"

var rootCmd = &cobra.Command{
	Use:           "nexus",
	Short:         "Arcade Nexus pilot profile",
	Long:          "Arcade Nexus tracks XP, ranks and achievements across the hub's mini-games.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newReportCmd(),
		newProfileCmd(),
		newAchievementsCmd(),
		newRanksCmd(),
		newHistoryCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
