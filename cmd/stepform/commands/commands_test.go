package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-stepform/pkg/storage"
	"github.com/goliatone/go-stepform/pkg/testsupport"
)

func seedStore(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STEPFORM_CONFIG", "")

	path := filepath.Join(t.TempDir(), "store.json")
	store, err := storage.NewFileStore(path)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	if err := store.Set(context.Background(), "multiStepFormData", []byte(testsupport.JanePayload)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSchemaCommand_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := execute(t, "schema", "--backend", "memory", "--format", "json")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode schema output: %v\n%s", err, out)
	}
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", doc["openapi"])
	}
}

func TestSchemaCommand_UnknownFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := execute(t, "schema", "--backend", "memory", "--format", "toml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestShowCommand(t *testing.T) {
	path := seedStore(t)
	out, err := execute(t, "show", "--backend", "file", "--store", path, "--plain")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Full Name: Jane Doe", "Password: •••••••"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret1") {
		t.Fatalf("password leaked:\n%s", out)
	}
}

func TestShowCommand_Empty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "empty.json")
	if _, err := execute(t, "show", "--backend", "file", "--store", path); err == nil {
		t.Fatalf("expected error for empty store")
	}
}

func TestExportCommand_HTMLToFile(t *testing.T) {
	path := seedStore(t)
	target := filepath.Join(t.TempDir(), "review.html")

	out, err := execute(t, "export", "--backend", "file", "--store", path, "--theme", "dark", "--format", "html", "--output", target)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Review written to") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `class="dark"`) || !strings.Contains(html, "Jane Doe") {
		t.Fatalf("unexpected html:\n%s", html)
	}
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	path := seedStore(t)
	_, err := execute(t, "export", "--backend", "file", "--store", path, "--format", "pdf")
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestClearCommand(t *testing.T) {
	path := seedStore(t)
	if _, err := execute(t, "clear", "--backend", "file", "--store", path); err != nil {
		t.Fatalf("clear: %v", err)
	}
	store, err := storage.NewFileStore(path)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	if _, err := store.Get(context.Background(), "multiStepFormData"); err == nil {
		t.Fatalf("expected record to be deleted")
	}
}

func TestRootCommand_InvalidBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := execute(t, "schema", "--backend", "redis"); err == nil {
		t.Fatalf("expected invalid backend error")
	}
}
