package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/review"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, review.Summary, render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry, err := render.NewRegistry(stubRenderer{name: "b"}, stubRenderer{name: "a"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("a") || registry.Has("c") {
		t.Fatalf("unexpected Has results")
	}
	got, err := registry.Get("b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "b" {
		t.Fatalf("unexpected renderer %q", got.Name())
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry, _ := render.NewRegistry()

	if err := registry.Register(nil); !errors.Is(err, render.ErrNilRenderer) {
		t.Fatalf("expected ErrNilRenderer, got %v", err)
	}
	if err := registry.Register(stubRenderer{}); !errors.Is(err, render.ErrUnnamedRenderer) {
		t.Fatalf("expected ErrUnnamedRenderer, got %v", err)
	}
	registry.MustRegister(stubRenderer{name: "x"})
	if err := registry.Register(stubRenderer{name: "x"}); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected ErrDuplicateRenderer, got %v", err)
	}
	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, err := render.NewRegistry(stubRenderer{name: "y"}, stubRenderer{name: "y"}); err == nil {
		t.Fatalf("expected duplicate error from constructor")
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	registry, _ := render.NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	registry.MustGet("missing")
}
