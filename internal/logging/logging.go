// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/internal/config"
)

// New returns a logger writing to out, or stderr when out is nil. Console
// format uses zerolog's human writer; json writes one object per line.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.WarnLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: level: %w", err)
		}
		level = parsed
	}

	writer := out
	switch cfg.Format {
	case "", config.FormatConsole:
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	case config.FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Str("app", "stepform").Logger(), nil
}
