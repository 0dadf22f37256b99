package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNextStep is returned by Advance on the review step, where only
	// Submit is available.
	ErrNoNextStep = errors.New("wizard: no next step")
	// ErrNoPreviousStep is returned by Retreat on the first step.
	ErrNoPreviousStep = errors.New("wizard: no previous step")
	// ErrNotReviewStep is returned by Submit before the review step.
	ErrNotReviewStep = errors.New("wizard: submit is only available on the review step")
	// ErrPersistenceFailure matches every *PersistenceError via errors.Is.
	ErrPersistenceFailure = errors.New("wizard: persistence failure")
)

// PersistenceFailure is the error kind reported when the record cannot be
// written. It is distinct from validation failures.
const PersistenceFailure = "persistence_failure"

// PersistenceError reports a failed write of the submitted record. The
// in-memory record and step are left untouched.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("wizard: persist %q: %v", e.Key, e.Err)
}

// Kind returns PersistenceFailure.
func (e *PersistenceError) Kind() string {
	return PersistenceFailure
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is matches ErrPersistenceFailure.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}
