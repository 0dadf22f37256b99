package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrPresenterRequired is returned by NewSession without a presenter.
	ErrPresenterRequired = errors.New("tui: presenter is required")
	// ErrUnknownAction is returned when the driver selects an index outside
	// the offered actions.
	ErrUnknownAction = errors.New("tui: unknown action")
)
