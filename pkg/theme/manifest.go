package theme

import gotheme "github.com/goliatone/go-theme"

// DefaultManifest returns the built-in palette. Base tokens are the light
// scheme; the "dark" variant overrides them.
func DefaultManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenBackground:  "#ffffff",
			TokenForeground:  "#0a0a0a",
			TokenPrimary:     "#171717",
			TokenMuted:       "#737373",
			TokenBorder:      "#e5e5e5",
			TokenDestructive: "#dc2626",
			TokenSuccess:     "#16a34a",
		},
		Templates: map[string]string{
			"review.html": "review.html",
		},
		Variants: map[string]gotheme.Variant{
			string(Light): {
				Tokens: map[string]string{},
			},
			string(Dark): {
				Tokens: map[string]string{
					TokenBackground:  "#0a0a0a",
					TokenForeground:  "#fafafa",
					TokenPrimary:     "#fafafa",
					TokenMuted:       "#a3a3a3",
					TokenBorder:      "#262626",
					TokenDestructive: "#f87171",
					TokenSuccess:     "#4ade80",
				},
			},
		},
	}
}
