package tui

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/theme"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme shares a theme manager with the session. The toggle action
// flips it in place.
func WithTheme(manager *theme.Manager) Option {
	return func(s *Session) {
		if manager != nil {
			s.theme = manager
		}
	}
}

// WithOutput sets where the default survey driver prints messages.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithReviewRenderer replaces the text renderer used on the review step.
func WithReviewRenderer(renderer render.Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.review = renderer
		}
	}
}
