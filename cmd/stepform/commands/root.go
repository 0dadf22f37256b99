package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	stepform "github.com/goliatone/go-stepform"
	"github.com/goliatone/go-stepform/internal/config"
	"github.com/goliatone/go-stepform/internal/logging"
	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/storage"
	"github.com/goliatone/go-stepform/pkg/theme"
)

// app carries state resolved once per invocation.
type app struct {
	configFile string
	envFile    string
	backend    string
	storePath  string
	themeMode  string

	cfg    config.Config
	logger zerolog.Logger
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "stepform",
		Short:         "Three-step registration form for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ~/.config/stepform/config.yaml)")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading STEPFORM_* variables")
	flags.StringVar(&a.backend, "backend", "", "storage backend: memory, file or sqlite")
	flags.StringVar(&a.storePath, "store", "", "storage file or database path")
	flags.StringVar(&a.themeMode, "theme", "", "initial theme: light or dark")

	root.AddCommand(runCmd(a), showCmd(a), exportCmd(a), schemaCmd(a), clearCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Storage.Backend = a.backend
	}
	if a.storePath != "" {
		cfg.Storage.Path = a.storePath
	}
	if a.themeMode != "" {
		cfg.Theme.Mode = a.themeMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("key", cfg.Storage.Key).
		Str("theme", cfg.Theme.Mode).
		Msg("configuration loaded")
	return nil
}

func (a *app) openStore(ctx context.Context) (storage.Store, error) {
	store, err := storage.Open(ctx, a.cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Storage.Backend, err)
	}
	return store, nil
}

func (a *app) themeManager() (*theme.Manager, error) {
	return theme.NewManager(theme.WithMode(a.cfg.ThemeMode()))
}

func (a *app) renderers(manager *theme.Manager) (*render.Registry, error) {
	return stepform.NewRenderers(manager)
}

func (a *app) closeStore(store storage.Store) {
	if err := store.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("close store")
	}
}
