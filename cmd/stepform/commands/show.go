package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/renderers/text"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/storage"
)

func showCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored submission with the password masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			rec, err := storage.LoadRecord(ctx, store, a.cfg.Storage.Key)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no submission stored under %q", a.cfg.Storage.Key)
			}
			if err != nil {
				return err
			}

			manager, err := a.themeManager()
			if err != nil {
				return err
			}
			var options []text.Option
			if plain {
				options = append(options, text.WithPlain())
			}
			out, err := text.New(options...).Render(ctx, review.Build(rec), render.OptionsFromTheme(manager))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and borders")
	return cmd
}
