package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/ui"
)

func newRanksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "Show the rank table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, "Ranks"))
			for i, r := range catalog.Ranks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s\n", i, ui.RankStyle(r.Color).Render(r.Name),
					ui.Muted.Render(ui.Thousands(r.XPThreshold)+" XP"))
			}
			return nil
		},
	}

	return cmd
}
