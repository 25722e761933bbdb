package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arcadenexus/internal/engine"
	"arcadenexus/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and which are unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			statuses := engine.AchievementStatuses(a.svc.Profile())
			earned := 0
			for _, s := range statuses {
				if s.Earned {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements %d/%d", earned, len(statuses))))
			for _, s := range statuses {
				if s.Earned {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", s.Icon, ui.Gold.Render(s.Name), ui.Muted.Render(fmt.Sprintf("#%d · %s", s.Order, s.Description)))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ui.IconLock, ui.Muted.Render(s.Name), ui.Muted.Render(s.Description))
			}
			return nil
		},
	}

	return cmd
}
