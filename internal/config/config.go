// Package config loads stepform settings from defaults, an optional YAML file,
// an optional .env file and STEPFORM_* environment variables, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/goliatone/go-stepform/pkg/storage"
	"github.com/goliatone/go-stepform/pkg/theme"
)

// EnvPrefix prefixes every environment override, e.g. STEPFORM_STORAGE_BACKEND.
const EnvPrefix = "STEPFORM"

// Log formats accepted by LogConfig.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Theme   ThemeConfig
	Log     LogConfig
}

// StorageConfig selects where submitted records are written.
type StorageConfig struct {
	Backend string
	Path    string
	Key     string
}

// ThemeConfig holds the initial theme.
type ThemeConfig struct {
	Mode string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// LoadOptions point Load at explicit files. Empty fields fall back to
// STEPFORM_CONFIG, ~/.config/stepform/config.yaml and ./.env.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string
}

// Load reads and validates the configuration.
func Load(opts LoadOptions) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()

	v.SetDefault("storage.backend", storage.BackendFile)
	v.SetDefault("storage.path", filepath.Join(homeDir(), ".local", "share", "stepform", "store.json"))
	v.SetDefault("storage.key", "multiStepFormData")
	v.SetDefault("theme.mode", string(theme.Light))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", FormatConsole)

	v.SetConfigType("yaml")

	cfgPath := opts.ConfigFile
	if cfgPath == "" {
		cfgPath = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "stepform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Storage.Path = strings.TrimSpace(c.Storage.Path)
	c.Storage.Key = strings.TrimSpace(c.Storage.Key)
	c.Theme.Mode = strings.ToLower(strings.TrimSpace(c.Theme.Mode))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendMemory:
	case storage.BackendFile, storage.BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage.path is required for %q", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("config: storage.backend %q: %w", c.Storage.Backend, storage.ErrUnknownBackend)
	}
	if c.Storage.Key == "" {
		return errors.New("config: storage.key is required")
	}
	if _, err := theme.ParseMode(c.Theme.Mode); err != nil {
		return fmt.Errorf("config: theme.mode: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: log.format %q must be %q or %q", c.Log.Format, FormatConsole, FormatJSON)
	}
	return nil
}

// StorageOptions converts the storage section for storage.Open.
func (c Config) StorageOptions() storage.Config {
	return storage.Config{Backend: c.Storage.Backend, Path: c.Storage.Path}
}

// ThemeMode returns the parsed initial mode.
func (c Config) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme.Mode)
	if err != nil {
		return theme.Light
	}
	return mode
}

// loadEnvFile loads environment variables from file. Existing variables win.
func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("config: load .env: %w", err)
		}
	}
	return nil
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
