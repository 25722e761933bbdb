package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <game> <score>",
		Short: "Report a finished game",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("game and score are required")
			}
			if _, err := catalog.ParseGameID(args[0]); err != nil {
				return err
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("score must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			score, _ := strconv.ParseFloat(args[1], 64)
			res, err := a.svc.ReportGame(ctx, args[0], score)
			if res == nil {
				return err
			}

			line := fmt.Sprintf("%s %s: score %s, +%s XP (total %s)", ui.IconJoystick, res.Game.DisplayName(),
				ui.Thousands(res.Score), ui.Thousands(res.XPGain), ui.Thousands(res.Profile.XP))
			if res.NewBest {
				line += " " + ui.BadgeBest
			}
			if res.RankUp() {
				line += " " + ui.BadgeRankUp + " " + ui.RankStyle(catalog.RankAt(res.RankAfter).Color).Render(catalog.RankAt(res.RankAfter).Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	return cmd
}
