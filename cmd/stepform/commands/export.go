package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/storage"
)

func exportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the stored submission as html, json or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			manager, err := a.themeManager()
			if err != nil {
				return err
			}
			registry, err := a.renderers(manager)
			if err != nil {
				return err
			}
			renderer, err := registry.Get(format)
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, registry.List())
			}

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

			out, err := renderer.Render(ctx, review.Build(rec), render.OptionsFromTheme(manager))
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review written to %s (%s)\n", output, renderer.ContentType())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", render.JSONName, "output format: html, json or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
