package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/pkg/schema"
	"github.com/goliatone/go-stepform/pkg/testsupport"
)

func TestLoadRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Set(ctx, "multiStepFormData", []byte(testsupport.JanePayload)); err != nil {
		t.Fatalf("set: %v", err)
	}

	rec, err := LoadRecord(ctx, store, "multiStepFormData")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(testsupport.JaneRecord(), rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecord_Missing(t *testing.T) {
	_, err := LoadRecord(context.Background(), NewMemoryStore(), "multiStepFormData")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRecord_InvalidPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Set(ctx, "k", []byte(`{"name":"Jane"}`))

	_, err := LoadRecord(ctx, store, "k")
	if !errors.Is(err, schema.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}
