package theme

import (
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// DefaultThemeName names the built-in manifest.
const DefaultThemeName = "stepform"

// Token keys understood by Styles and the HTML renderer.
const (
	TokenBackground  = "background"
	TokenForeground  = "foreground"
	TokenPrimary     = "primary"
	TokenMuted       = "muted"
	TokenBorder      = "border"
	TokenDestructive = "destructive"
	TokenSuccess     = "success"
)

// Provider exposes the current mode and a toggle. It is the only surface the
// rest of the module depends on.
type Provider interface {
	Mode() Mode
	Toggle() Mode
}

// Option configures a Manager.
type Option func(*Manager)

// WithMode sets the initial mode.
func WithMode(mode Mode) Option {
	return func(m *Manager) {
		if mode == Light || mode == Dark {
			m.mode = mode
		}
	}
}

// WithManifest replaces the built-in manifest. The manifest must define a
// "dark" variant; light tokens come from the manifest base.
func WithManifest(manifest *gotheme.Manifest) Option {
	return func(m *Manager) {
		if manifest != nil {
			m.manifest = manifest
		}
	}
}

// OnChange registers a callback invoked after every mode change.
func OnChange(fn func(Mode)) Option {
	return func(m *Manager) {
		if fn != nil {
			m.listeners = append(m.listeners, fn)
		}
	}
}

// Manager tracks the active mode against a registered go-theme manifest. It
// is owned by a single session and is not safe for concurrent use.
type Manager struct {
	provider  gotheme.ThemeProvider
	manifest  *gotheme.Manifest
	mode      Mode
	listeners []func(Mode)
}

var (
	_ Provider              = (*Manager)(nil)
	_ gotheme.ThemeSelector = (*Manager)(nil)
)

// NewManager registers the manifest with a go-theme registry and starts in
// light mode unless WithMode says otherwise.
func NewManager(options ...Option) (*Manager, error) {
	m := &Manager{
		manifest: DefaultManifest(),
		mode:     Light,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	if _, ok := m.manifest.Variants[string(Dark)]; !ok {
		return nil, fmt.Errorf("theme: manifest %q has no %q variant", m.manifest.Name, Dark)
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(m.manifest); err != nil {
		return nil, fmt.Errorf("theme: register manifest %q: %w", m.manifest.Name, err)
	}
	m.provider = registry
	return m, nil
}

// Mode reports the active mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Toggle flips between light and dark and returns the new mode.
func (m *Manager) Toggle() Mode {
	m.Set(m.mode.Toggle())
	return m.mode
}

// Set switches to mode, notifying listeners when it changes.
func (m *Manager) Set(mode Mode) {
	if mode != Light && mode != Dark {
		return
	}
	if mode == m.mode {
		return
	}
	m.mode = mode
	for _, fn := range m.listeners {
		fn(mode)
	}
}

// ThemeProvider exposes the go-theme registry holding the manifest.
func (m *Manager) ThemeProvider() gotheme.ThemeProvider {
	return m.provider
}

// Manifest returns the registered manifest.
func (m *Manager) Manifest() *gotheme.Manifest {
	return m.manifest
}

// Tokens resolves the token set for the active mode: manifest base tokens
// overlaid with the active variant.
func (m *Manager) Tokens() map[string]string {
	return ResolveTokens(m.manifest, m.mode)
}

// Styles derives terminal styles for the active mode.
func (m *Manager) Styles() Styles {
	return NewStyles(m.Tokens())
}

// CSSVars derives CSS custom properties for the active mode.
func (m *Manager) CSSVars() map[string]string {
	return CSSVars(m.Tokens())
}

// Select implements go-theme's ThemeSelector. An empty name selects the
// registered manifest and an empty variant selects the active mode.
func (m *Manager) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	if name != "" && name != m.manifest.Name {
		return nil, fmt.Errorf("theme: %q not registered", name)
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = string(m.mode)
	}
	if _, err := ParseMode(variant); err != nil {
		return nil, err
	}
	return &gotheme.Selection{
		Theme:    m.manifest.Name,
		Variant:  variant,
		Manifest: m.manifest,
	}, nil
}

// ResolveTokens overlays the variant for mode on the manifest base tokens.
func ResolveTokens(manifest *gotheme.Manifest, mode Mode) map[string]string {
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[string(mode)]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// CSSVars maps tokens to "--token" custom properties.
func CSSVars(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+key] = value
	}
	return out
}

// CSSVarsStyle renders custom properties as a deterministic inline style.
func CSSVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s; ", key, vars[key])
	}
	return strings.TrimSpace(b.String())
}
