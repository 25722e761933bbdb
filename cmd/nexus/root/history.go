package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently reported games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			reports, err := a.reports.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJoystick, "Recent games"))
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no games reported yet)"))
				return nil
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %-15s %s %s\n",
					ui.Muted.Render(r.ReportedAt.Local().Format("2006-01-02 15:04")),
					catalog.GameID(r.GameID).DisplayName(),
					ui.LabelValue("score", ui.Thousands(r.Score)),
					ui.Good.Render(fmt.Sprintf("+%s XP", ui.Thousands(r.XPAwarded))))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of games to show")

	return cmd
}
