package wizard

import (
	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/validation"
)

// ErrorStore holds the field errors currently displayed by the form.
type ErrorStore struct {
	errs validation.Errors
}

// NewErrorStore returns an empty store.
func NewErrorStore() *ErrorStore {
	return &ErrorStore{errs: validation.Errors{}}
}

// Replace swaps the displayed errors for errs.
func (s *ErrorStore) Replace(errs validation.Errors) {
	s.errs = errs.Clone()
	if s.errs == nil {
		s.errs = validation.Errors{}
	}
}

// Clear removes the error for field and reports whether one was present.
func (s *ErrorStore) Clear(field record.Field) bool {
	if _, ok := s.errs[field]; !ok {
		return false
	}
	delete(s.errs, field)
	return true
}

// ClearAll removes every error.
func (s *ErrorStore) ClearAll() {
	s.errs = validation.Errors{}
}

// Get returns the error for field.
func (s *ErrorStore) Get(field record.Field) (validation.FieldError, bool) {
	fe, ok := s.errs[field]
	return fe, ok
}

// Empty reports whether no error is displayed.
func (s *ErrorStore) Empty() bool {
	return s.errs.Empty()
}

// Snapshot returns a copy of the displayed errors.
func (s *ErrorStore) Snapshot() validation.Errors {
	return s.errs.Clone()
}
