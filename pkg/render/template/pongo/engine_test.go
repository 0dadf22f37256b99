package pongo_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-stepform/pkg/render/template/pongo"
	"github.com/goliatone/go-stepform/pkg/testsupport"
)

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.html":      {Data: []byte("Hello {{ name|trim }}!")},
		"use-global.html": {Data: []byte("env={{ settings.env }}")},
		"escape.html":     {Data: []byte("{{ value }}")},
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without fs")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello.html", map[string]any{"name": "  Ada "}, w)
	})
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q", written)
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	engine := newEngine(t)
	type payload struct {
		Name string `json:"name"`
	}
	result, err := engine.RenderTemplate("hello.html", payload{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Grace!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global.html", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_AutoEscapes(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("escape.html", map[string]any{"value": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<b>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "1-two" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("stepform_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	result, err := engine.RenderString("{{ name|stepform_shout }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
	if err := engine.RegisterFilter("stepform_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing.html", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
