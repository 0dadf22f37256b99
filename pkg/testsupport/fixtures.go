// Package testsupport holds fixtures and golden-file helpers shared by package
// tests. Goldens are rewritten when UPDATE_GOLDENS is set.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/pkg/record"
)

// JanePayload is the persisted form of JaneRecord.
const JanePayload = `{"name":"Jane Doe","email":"jane@example.com","phone":"555-1234","username":"jane_d","password":"secret1","confirmPassword":"secret1"}`

// JaneRecord returns a record that passes every step validator.
func JaneRecord() record.Record {
	return record.Record{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-1234",
		Username:        "jane_d",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

// MustLoadRecord loads a JSON fixture into a Record.
func MustLoadRecord(t *testing.T, path string) record.Record {
	t.Helper()

	rec, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return rec
}

// LoadRecord reads a JSON fixture into a Record, returning an error for
// callers managing setup outside of *testing.T.
func LoadRecord(path string) (record.Record, error) {
	if path == "" {
		return record.Record{}, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Record{}, fmt.Errorf("testsupport: read record: %w", err)
	}
	var out record.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return record.Record{}, fmt.Errorf("testsupport: unmarshal record: %w", err)
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
