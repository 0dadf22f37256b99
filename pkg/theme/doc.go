// Package theme is the theme-state provider used by presentation code. It
// tracks a light/dark mode, resolves design tokens from a go-theme manifest,
// and derives terminal styles and CSS variables from those tokens. The form
// core never reads it; renderers and the terminal session receive it
// explicitly.
package theme
