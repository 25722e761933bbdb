package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arcadenexus/internal/storage"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored profile blob as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			data, ok, err := a.store.Raw(ctx)
			if err != nil {
				return err
			}
			if !ok {
				data, err = storage.EncodeProfile(storage.DefaultProfile())
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	return cmd
}
