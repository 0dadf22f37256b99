package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the active color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ErrUnknownMode is returned by ParseMode for unsupported values.
var ErrUnknownMode = errors.New("theme: unknown mode")

// ParseMode resolves "light" or "dark" (case insensitive). Empty input
// selects Light.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Icon returns the glyph shown on the toggle control: the moon offers dark
// mode while light is active and the sun offers light mode otherwise.
func (m Mode) Icon() string {
	if m == Dark {
		return "☀"
	}
	return "☾"
}

func (m Mode) String() string {
	return string(m)
}
