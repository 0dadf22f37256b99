package wizard

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-stepform/pkg/notify"
	"github.com/goliatone/go-stepform/pkg/storage"
	"github.com/goliatone/go-stepform/pkg/validation"
)

// DefaultStorageKey is the key the submitted record is written under.
const DefaultStorageKey = "multiStepFormData"

// SubmittedMessage is the acknowledgment shown after a successful submit.
const SubmittedMessage = "Registration submitted successfully!"

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the key-value store used by Submit.
func WithStore(store storage.Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithNotifier sets the acknowledgment channel used by Submit.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the controller's logger. The controller logs field names
// and step changes only; the submitted payload goes to the Notifier's Record
// channel, which may log it verbatim.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) Option {
	return func(c *Controller) {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			c.key = trimmed
		}
	}
}

// WithSessionID tags log lines with id instead of a generated UUID.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			c.sessionID = trimmed
		}
	}
}

// WithValidators replaces the gate validators. Steps without a validator
// advance unconditionally.
func WithValidators(validators map[Step]validation.StepValidator) Option {
	return func(c *Controller) {
		c.validators = make(map[Step]validation.StepValidator, len(validators))
		for step, fn := range validators {
			c.validators[step] = fn
		}
	}
}

// DefaultValidators gates the user info and account details steps.
func DefaultValidators() map[Step]validation.StepValidator {
	return map[Step]validation.StepValidator{
		StepUserInfo:       validation.UserInfoStep,
		StepAccountDetails: validation.AccountDetailsStep,
	}
}
