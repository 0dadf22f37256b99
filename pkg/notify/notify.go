// Package notify carries submission feedback out of the form core: a blocking
// acknowledgment addressed to the user and a diagnostic record of the
// submitted data.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/pkg/theme"
)

// Notifier delivers submission feedback.
type Notifier interface {
	// Acknowledge tells the user the action completed. Implementations may
	// block until the user dismisses the message.
	Acknowledge(ctx context.Context, message string) error
	// Record writes message to a diagnostic stream.
	Record(ctx context.Context, message string) error
}

// Nop discards every message.
type Nop struct{}

func (Nop) Acknowledge(context.Context, string) error { return nil }
func (Nop) Record(context.Context, string) error      { return nil }

// Option configures a Terminal notifier.
type Option func(*Terminal)

// WithOutput sets the writer acknowledgments are printed to.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// WithTheme styles acknowledgments with the active theme.
func WithTheme(provider *theme.Manager) Option {
	return func(t *Terminal) {
		t.theme = provider
	}
}

// WithPause installs the blocking step run after an acknowledgment is shown,
// typically a "press enter" prompt.
func WithPause(fn func(context.Context) error) Option {
	return func(t *Terminal) {
		t.pause = fn
	}
}

// Terminal prints acknowledgments to a writer and records diagnostics through
// zerolog.
type Terminal struct {
	out    io.Writer
	logger zerolog.Logger
	theme  *theme.Manager
	pause  func(context.Context) error
}

var _ Notifier = (*Terminal)(nil)

// NewTerminal builds a notifier writing to stdout with logging disabled.
func NewTerminal(options ...Option) *Terminal {
	t := &Terminal{
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Acknowledge prints message and waits on the pause hook, if any.
func (t *Terminal) Acknowledge(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line := message
	if t.theme != nil {
		line = t.theme.Styles().Success.Render(message)
	}
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return fmt.Errorf("notify: write acknowledgment: %w", err)
	}
	if t.pause != nil {
		if err := t.pause(ctx); err != nil {
			return fmt.Errorf("notify: pause: %w", err)
		}
	}
	return nil
}

// Record logs message at info level. The message is logged as is, including
// any credentials it carries.
func (t *Terminal) Record(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.logger.Info().Str("channel", "diagnostic").Msg(message)
	return nil
}
