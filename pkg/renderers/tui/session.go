// Package tui drives the registration form in a terminal. A Session walks a
// wizard.Presenter through its steps with survey prompts, re-asking only the
// fields that failed validation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/renderers/text"
	"github.com/goliatone/go-stepform/pkg/theme"
	"github.com/goliatone/go-stepform/pkg/wizard"
)

type action int

const (
	actionNext action = iota
	actionBack
	actionSubmit
	actionToggleTheme
)

// Session runs one interactive form.
type Session struct {
	presenter *wizard.Presenter
	driver    PromptDriver
	theme     *theme.Manager
	review    render.Renderer
	out       io.Writer
	logger    zerolog.Logger

	// step whose fields were collected since the last navigation
	prompted wizard.Step
}

// NewSession wires a session around presenter. Defaults: survey driver,
// light theme, text review renderer.
func NewSession(presenter *wizard.Presenter, options ...Option) (*Session, error) {
	if presenter == nil {
		return nil, ErrPresenterRequired
	}
	s := &Session{
		presenter: presenter,
		review:    text.New(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	if s.theme == nil {
		manager, err := theme.NewManager()
		if err != nil {
			return nil, fmt.Errorf("tui: theme: %w", err)
		}
		s.theme = manager
	}
	return s, nil
}

// Theme returns the manager flipped by the toggle action.
func (s *Session) Theme() *theme.Manager {
	return s.theme
}

// Run prompts until the record is submitted. It returns nil after a
// successful submit, ErrAborted when the user interrupts, and any
// non-persistence error from the form. Persistence failures are shown and
// the review step is offered again.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := s.presenter.Step()
		if err := s.header(ctx, step); err != nil {
			return err
		}

		if step == wizard.StepReview {
			done, err := s.reviewStep(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}
		if err := s.formStep(ctx, step); err != nil {
			return err
		}
	}
}

func (s *Session) header(ctx context.Context, step wizard.Step) error {
	styles := s.theme.Styles()
	title := styles.Title.Render(fmt.Sprintf("Step %d of %d: %s", int(step), wizard.TotalSteps, step.Title()))
	return s.driver.Info(ctx, progress(step)+"\n"+title)
}

func (s *Session) formStep(ctx context.Context, step wizard.Step) error {
	if s.prompted != step || !s.presenter.Errors().Empty() {
		if err := s.collect(ctx, step); err != nil {
			return err
		}
		s.prompted = step
	}

	actions := []action{actionNext}
	if s.presenter.Controller().CanRetreat() {
		actions = append(actions, actionBack)
	}
	actions = append(actions, actionToggleTheme)

	chosen, err := s.choose(ctx, actions)
	if err != nil {
		return err
	}
	switch chosen {
	case actionNext:
		errs, err := s.presenter.Next()
		if err != nil {
			return err
		}
		if !errs.Empty() {
			s.logger.Debug().Int("step", int(step)).Int("invalid", len(errs)).Msg("step blocked")
			return nil
		}
		s.prompted = 0
	case actionBack:
		if err := s.presenter.Back(); err != nil {
			return err
		}
		s.prompted = 0
	case actionToggleTheme:
		return s.toggleTheme(ctx)
	}
	return nil
}

// collect prompts the step fields, or only the invalid ones when the last
// advance was blocked.
func (s *Session) collect(ctx context.Context, step wizard.Step) error {
	fields := step.Fields()
	if errs := s.presenter.Errors(); !errs.Empty() {
		fields = errs.Fields()
	}

	styles := s.theme.Styles()
	for _, field := range fields {
		if message := s.presenter.ErrorFor(field); message != "" {
			if err := s.driver.Info(ctx, styles.Error.Render("✗ "+message)); err != nil {
				return err
			}
		}
		value, err := s.ask(ctx, field)
		if err != nil {
			return err
		}
		if err := s.presenter.Edit(field, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) ask(ctx context.Context, field record.Field) (string, error) {
	cfg := InputConfig{
		Message: field.Label(),
		Help:    field.Placeholder(),
	}
	if field.Secret() {
		return s.driver.Password(ctx, cfg)
	}
	cfg.Default = s.presenter.Controller().Record().Get(field)
	return s.driver.Input(ctx, cfg)
}

func (s *Session) reviewStep(ctx context.Context) (bool, error) {
	summary := s.presenter.Summary()
	options := render.OptionsFromTheme(s.theme)
	options.TermsAccepted = s.presenter.TermsAccepted()

	out, err := s.review.Render(ctx, summary, options)
	if err != nil {
		return false, fmt.Errorf("tui: render review: %w", err)
	}
	if err := s.driver.Info(ctx, strings.TrimRight(string(out), "\n")); err != nil {
		return false, err
	}

	accepted, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: summary.Terms,
		Default: s.presenter.TermsAccepted(),
	})
	if err != nil {
		return false, err
	}
	s.presenter.SetTermsAccepted(accepted)

	chosen, err := s.choose(ctx, []action{actionSubmit, actionBack, actionToggleTheme})
	if err != nil {
		return false, err
	}
	switch chosen {
	case actionBack:
		if err := s.presenter.Back(); err != nil {
			return false, err
		}
		s.prompted = 0
		return false, nil
	case actionToggleTheme:
		return false, s.toggleTheme(ctx)
	}

	err = s.presenter.Submit(ctx)
	var perr *wizard.PersistenceError
	if errors.As(err, &perr) {
		s.logger.Warn().Err(perr).Msg("submission not saved")
		styles := s.theme.Styles()
		return false, s.driver.Info(ctx, styles.Error.Render("✗ Could not save your registration: "+perr.Err.Error()))
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) toggleTheme(ctx context.Context) error {
	mode := s.theme.Toggle()
	s.logger.Debug().Str("mode", string(mode)).Msg("theme toggled")
	return s.driver.Info(ctx, s.theme.Styles().Muted.Render("Theme: "+string(mode)))
}

func (s *Session) choose(ctx context.Context, actions []action) (action, error) {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = s.label(a)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Action", Options: labels})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAction, idx)
	}
	return actions[idx], nil
}

func (s *Session) label(a action) string {
	switch a {
	case actionNext:
		return "Next"
	case actionBack:
		return "Back"
	case actionSubmit:
		return "Submit"
	default:
		return s.theme.Mode().Icon() + " Toggle theme"
	}
}

// progress renders the step indicator, e.g. "✓ ── [2] ── 3".
func progress(current wizard.Step) string {
	parts := make([]string, 0, wizard.TotalSteps)
	for _, step := range wizard.Steps() {
		switch {
		case step < current:
			parts = append(parts, "✓")
		case step == current:
			parts = append(parts, fmt.Sprintf("[%d]", int(step)))
		default:
			parts = append(parts, fmt.Sprintf("%d", int(step)))
		}
	}
	return strings.Join(parts, " ── ")
}
