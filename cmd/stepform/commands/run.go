package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-stepform/pkg/notify"
	"github.com/goliatone/go-stepform/pkg/renderers/tui"
	"github.com/goliatone/go-stepform/pkg/wizard"
)

func runCmd(a *app) *cobra.Command {
	var noPause bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in and submit the registration form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			manager, err := a.themeManager()
			if err != nil {
				return err
			}

			driver := tui.NewSurveyDriver(cmd.OutOrStdout())
			notifyOpts := []notify.Option{
				notify.WithOutput(cmd.OutOrStdout()),
				notify.WithLogger(a.logger),
				notify.WithTheme(manager),
			}
			if !noPause {
				notifyOpts = append(notifyOpts, notify.WithPause(func(ctx context.Context) error {
					_, err := driver.Input(ctx, tui.InputConfig{Message: "Press Enter to continue"})
					return err
				}))
			}

			controller := wizard.New(
				wizard.WithStore(store),
				wizard.WithNotifier(notify.NewTerminal(notifyOpts...)),
				wizard.WithLogger(a.logger),
				wizard.WithStorageKey(a.cfg.Storage.Key),
			)
			session, err := tui.NewSession(
				wizard.NewPresenter(controller),
				tui.WithPromptDriver(driver),
				tui.WithTheme(manager),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			err = session.Run(ctx)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&noPause, "no-pause", false, "do not wait for Enter after the confirmation")
	return cmd
}
