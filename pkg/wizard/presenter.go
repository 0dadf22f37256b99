package wizard

import (
	"context"
	"errors"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/validation"
)

// Presenter adapts a Controller for an interactive form.
type Presenter struct {
	controller *Controller
	errors     *ErrorStore
	terms      bool
}

// NewPresenter wraps controller. A nil controller gets a default one.
func NewPresenter(controller *Controller) *Presenter {
	if controller == nil {
		controller = New()
	}
	return &Presenter{controller: controller, errors: NewErrorStore()}
}

// Controller returns the wrapped controller.
func (p *Presenter) Controller() *Controller {
	return p.controller
}

// Step returns the active step.
func (p *Presenter) Step() Step {
	return p.controller.Step()
}

// Edit sets a single field.
func (p *Presenter) Edit(field record.Field, value string) error {
	return p.Apply(record.Patch{field: value})
}

// Apply merges patch into the record and clears the displayed error of every
// field it names.
func (p *Presenter) Apply(patch record.Patch) error {
	if err := p.controller.MergePartial(patch); err != nil {
		return err
	}
	for field := range patch {
		p.errors.Clear(field)
	}
	return nil
}

// Next tries to advance. When the gate blocks, the validator output replaces
// the displayed errors and is returned with a nil error. Navigation errors
// are returned as is.
func (p *Presenter) Next() (validation.Errors, error) {
	err := p.controller.Advance()
	if err == nil {
		p.leaveStep()
		return nil, nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		p.errors.Replace(errs)
		return errs.Clone(), nil
	}
	return nil, err
}

// Back moves to the previous step and drops the displayed errors.
func (p *Presenter) Back() error {
	if err := p.controller.Retreat(); err != nil {
		return err
	}
	p.leaveStep()
	return nil
}

// Submit persists the record. The terms checkbox is not consulted.
func (p *Presenter) Submit(ctx context.Context) error {
	return p.controller.Submit(ctx)
}

// Reset clears the form.
func (p *Presenter) Reset() {
	p.controller.Reset()
	p.leaveStep()
}

// Errors returns the displayed errors.
func (p *Presenter) Errors() validation.Errors {
	return p.errors.Snapshot()
}

// ErrorFor returns the displayed message for field, or "".
func (p *Presenter) ErrorFor(field record.Field) string {
	fe, ok := p.errors.Get(field)
	if !ok {
		return ""
	}
	return fe.Message
}

// Summary builds the review page content for the current record.
func (p *Presenter) Summary() review.Summary {
	return review.Build(p.controller.Record())
}

// SetTermsAccepted records the terms checkbox.
func (p *Presenter) SetTermsAccepted(accepted bool) {
	p.terms = accepted
	p.controller.logger.Debug().Bool("accepted", accepted).Msg("terms toggled")
}

// TermsAccepted reports the terms checkbox. It resets whenever the review
// step is left.
func (p *Presenter) TermsAccepted() bool {
	return p.terms
}

func (p *Presenter) leaveStep() {
	p.errors.ClearAll()
	p.terms = false
}
