package root

import (
	"context"

	"github.com/spf13/cobra"

	"arcadenexus/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive profile panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunPanel(ctx, a.svc, cmd.OutOrStdout(), a.cfg.ToastDuration)
		},
	}

	return cmd
}
