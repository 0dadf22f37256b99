// Package wizard implements the step-wise registration form state machine.
//
// Controller owns the current step and the accumulated record. It merges
// partial edits without validating them, gates forward navigation on the
// validator registered for the current step, and on the review step persists
// the whole record under a fixed key before acknowledging the submission.
//
// Presenter sits between a presentation layer and the Controller. It keeps the
// per-field error store that the form displays: validator output is stored
// when a step fails to advance, and an edit clears the error of the field it
// touches. Validation itself stays in package validation so it can be tested
// without any display code.
//
// A Controller and its Presenter belong to one form session; neither is safe
// for concurrent use.
package wizard
