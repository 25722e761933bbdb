package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/ui"
)

func newProfileCmd() *cobra.Command {
	var games bool
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"status"},
		Short:   "Show the pilot profile panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			a.svc.Render()
			if !games {
				return nil
			}

			p := a.svc.Profile()
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconStar+" Games"))
			for _, g := range catalog.Games() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %-15s %s %s\n", g.DisplayName(),
					ui.LabelValue("best", ui.Thousands(p.Scores.Get(g))),
					ui.Muted.Render(fmt.Sprintf("(%d plays)", p.PlayCounts.Get(g))))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&games, "games", "g", false, "Also list per-game best scores and play counts")

	return cmd
}
