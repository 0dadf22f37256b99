package theme

import (
	"errors"
	"testing"

	gotheme "github.com/goliatone/go-theme"
)

func TestManager_ToggleFlipsModeAndNotifies(t *testing.T) {
	var seen []Mode
	m, err := NewManager(OnChange(func(mode Mode) { seen = append(seen, mode) }))
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if m.Mode() != Light {
		t.Fatalf("expected light by default, got %s", m.Mode())
	}
	if got := m.Toggle(); got != Dark {
		t.Fatalf("expected dark after toggle, got %s", got)
	}
	if got := m.Toggle(); got != Light {
		t.Fatalf("expected light after second toggle, got %s", got)
	}
	if len(seen) != 2 || seen[0] != Dark || seen[1] != Light {
		t.Fatalf("unexpected notifications: %v", seen)
	}

	m.Set(Light)
	if len(seen) != 2 {
		t.Fatalf("setting the current mode should not notify: %v", seen)
	}
}

func TestManager_TokensFollowVariant(t *testing.T) {
	m, err := NewManager(WithMode(Dark))
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	dark := m.Tokens()
	if dark[TokenBackground] != "#0a0a0a" {
		t.Fatalf("expected dark background, got %s", dark[TokenBackground])
	}
	m.Toggle()
	light := m.Tokens()
	if light[TokenBackground] != "#ffffff" {
		t.Fatalf("expected light background, got %s", light[TokenBackground])
	}
	if m.CSSVars()["--background"] != "#ffffff" {
		t.Fatalf("css vars not derived from tokens: %v", m.CSSVars())
	}
}

func TestManager_Select(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	selection, err := m.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != DefaultThemeName || selection.Variant != "light" {
		t.Fatalf("unexpected selection: %+v", selection)
	}
	if selection.Manifest != m.Manifest() {
		t.Fatalf("selection should carry the registered manifest")
	}
	if _, err := m.Select("other", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if _, err := m.Select("", "sepia"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if m.ThemeProvider() == nil {
		t.Fatalf("expected go-theme provider")
	}
}

func TestNewManager_RequiresDarkVariant(t *testing.T) {
	manifest := &gotheme.Manifest{Name: "plain", Version: "1.0.0"}
	if _, err := NewManager(WithManifest(manifest)); err == nil {
		t.Fatalf("expected error for manifest without dark variant")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"": Light, "LIGHT": Light, " dark ": Dark}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("blue"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if Light.Icon() == Dark.Icon() {
		t.Fatalf("toggle icons should differ")
	}
}

func TestCSSVarsStyleIsSorted(t *testing.T) {
	got := CSSVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("unexpected style %q", got)
	}
}
