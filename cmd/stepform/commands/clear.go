package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func clearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			if err := store.Delete(ctx, a.cfg.Storage.Key); err != nil {
				return err
			}
			a.logger.Info().Str("key", a.cfg.Storage.Key).Msg("submission cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "Submission cleared.")
			return nil
		},
	}
}
