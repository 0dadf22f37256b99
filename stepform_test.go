package stepform

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/testsupport"
	"github.com/goliatone/go-stepform/pkg/theme"
	"github.com/goliatone/go-stepform/pkg/wizard"
)

func TestNewRenderers(t *testing.T) {
	registry, err := NewRenderers(nil)
	if err != nil {
		t.Fatalf("renderers: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "json", "text"}, registry.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReview(t *testing.T) {
	out, err := RenderReview(context.Background(), testsupport.JaneRecord(), "html", theme.Dark)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `class="dark"`) {
		t.Fatalf("expected dark html")
	}

	if _, err := RenderReview(context.Background(), testsupport.JaneRecord(), "pdf", theme.Light); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestNewPresenter(t *testing.T) {
	p := NewPresenter(wizard.WithSessionID("s1"))
	if p.Controller().SessionID() != "s1" {
		t.Fatalf("options not applied")
	}
	if err := p.Apply(Patch{"name": "Jane"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.Controller().Record().Name != "Jane" {
		t.Fatalf("expected name to be set")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/review.html"); err != nil {
		t.Fatalf("expected embedded review template: %v", err)
	}
}
