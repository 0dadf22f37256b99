package render

import "github.com/goliatone/go-stepform/pkg/theme"

// Options describe per-call presentation data. Renderers never mutate the
// summary they receive.
type Options struct {
	// Mode selects the light or dark palette. Empty means light.
	Mode theme.Mode
	// Tokens carries the resolved theme tokens for Mode. Renderers fall back
	// to the default manifest when empty.
	Tokens map[string]string
	// TermsAccepted reflects the review checkbox.
	TermsAccepted bool
}

// OptionsFromTheme snapshots the manager's active mode and tokens.
func OptionsFromTheme(manager *theme.Manager) Options {
	if manager == nil {
		return Options{}
	}
	return Options{Mode: manager.Mode(), Tokens: manager.Tokens()}
}

// ResolvedMode returns Mode or light when unset.
func (o Options) ResolvedMode() theme.Mode {
	if o.Mode == "" {
		return theme.Light
	}
	return o.Mode
}

// ResolvedTokens returns Tokens, or the default manifest tokens for the
// resolved mode.
func (o Options) ResolvedTokens() map[string]string {
	if len(o.Tokens) > 0 {
		return o.Tokens
	}
	return theme.ResolveTokens(theme.DefaultManifest(), o.ResolvedMode())
}
