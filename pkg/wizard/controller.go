package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/pkg/notify"
	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/storage"
	"github.com/goliatone/go-stepform/pkg/validation"
)

// State is a read-only snapshot of the controller.
type State struct {
	Step      Step          `json:"step"`
	Record    record.Record `json:"record"`
	Submitted bool          `json:"submitted"`
}

// Controller owns the step index and the accumulated record.
type Controller struct {
	step      Step
	record    record.Record
	submitted bool

	store      storage.Store
	notifier   notify.Notifier
	logger     zerolog.Logger
	key        string
	sessionID  string
	validators map[Step]validation.StepValidator
}

// New returns a controller on the first step with an empty record. Without
// options it persists to memory and discards notifications.
func New(options ...Option) *Controller {
	c := &Controller{
		step:       FirstStep,
		store:      storage.NewMemoryStore(),
		notifier:   notify.Nop{},
		logger:     zerolog.Nop(),
		key:        DefaultStorageKey,
		validators: DefaultValidators(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	c.logger = c.logger.With().Str("session", c.sessionID).Logger()
	return c
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.step
}

// Record returns a copy of the accumulated record.
func (c *Controller) Record() record.Record {
	return c.record
}

// Submitted reports whether the record was persisted since the last reset.
func (c *Controller) Submitted() bool {
	return c.submitted
}

// SessionID identifies the session in logs.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// StorageKey returns the key Submit writes to.
func (c *Controller) StorageKey() string {
	return c.key
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() State {
	return State{Step: c.step, Record: c.record, Submitted: c.submitted}
}

// CanAdvance reports whether a next step exists. It does not run the gate.
func (c *Controller) CanAdvance() bool {
	return c.step < LastStep
}

// CanRetreat reports whether a previous step exists.
func (c *Controller) CanRetreat() bool {
	return c.step > FirstStep
}

// CanSubmit reports whether the review step is active.
func (c *Controller) CanSubmit() bool {
	return c.step == StepReview
}

// MergePartial shallow-merges patch into the record without validating the
// values. An empty patch changes nothing. A patch naming an unknown field is
// rejected as a whole.
func (c *Controller) MergePartial(patch record.Patch) error {
	if len(patch) == 0 {
		return nil
	}
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("wizard: merge: %w", err)
	}
	c.record = c.record.Merge(patch)

	fields := make([]string, 0, len(patch))
	for _, field := range patch.Fields() {
		fields = append(fields, string(field))
	}
	c.logger.Debug().Strs("fields", fields).Int("step", int(c.step)).Msg("record updated")
	return nil
}

// Advance moves to the next step when the current step's validator reports
// no errors. A failed gate returns the validation.Errors and leaves the step
// unchanged. On the review step it returns ErrNoNextStep.
func (c *Controller) Advance() error {
	if !c.CanAdvance() {
		return ErrNoNextStep
	}
	if validate := c.validators[c.step]; validate != nil {
		if errs := validate(c.record); !errs.Empty() {
			c.logger.Debug().
				Int("step", int(c.step)).
				Strs("invalid", fieldNames(errs.Fields())).
				Msg("step gate blocked")
			return errs
		}
	}
	c.step++
	c.logger.Debug().Int("step", int(c.step)).Msg("advanced")
	return nil
}

// Retreat moves to the previous step. Earlier steps are not re-validated.
func (c *Controller) Retreat() error {
	if !c.CanRetreat() {
		return ErrNoPreviousStep
	}
	c.step--
	c.logger.Debug().Int("step", int(c.step)).Msg("retreated")
	return nil
}

// Submit serializes the full record, writes it under the storage key in a
// single Set, records the payload on the diagnostic channel, and acknowledges
// the submission. A failed write returns *PersistenceError and leaves the
// controller untouched. Notifier failures are returned after the record has
// been persisted.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.CanSubmit() {
		return ErrNotReviewStep
	}

	payload, err := json.Marshal(c.record)
	if err != nil {
		return fmt.Errorf("wizard: encode record: %w", err)
	}

	if err := c.store.Set(ctx, c.key, payload); err != nil {
		c.logger.Error().Err(err).Str("key", c.key).Msg("persist record failed")
		return &PersistenceError{Key: c.key, Err: err}
	}
	c.submitted = true
	c.logger.Info().Str("key", c.key).Int("bytes", len(payload)).Msg("record persisted")

	if err := c.notifier.Record(ctx, "Form Data Submitted: "+string(payload)); err != nil {
		return fmt.Errorf("wizard: record submission: %w", err)
	}
	if err := c.notifier.Acknowledge(ctx, SubmittedMessage); err != nil {
		return fmt.Errorf("wizard: acknowledge submission: %w", err)
	}
	return nil
}

// Reset clears the record and returns to the first step. Persisted data is
// left in the store.
func (c *Controller) Reset() {
	c.record = record.Record{}
	c.step = FirstStep
	c.submitted = false
	c.logger.Debug().Msg("reset")
}

func fieldNames(fields []record.Field) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = string(field)
	}
	return out
}
