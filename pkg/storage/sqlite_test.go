package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

func TestSQLiteStore_ReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stepform.db")

	first, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "multiStepFormData", []byte(`{"username":"jane_d"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "multiStepFormData")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"username":"jane_d"}` {
		t.Fatalf("unexpected value %s", got)
	}
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	if _, err := OpenSQLite(context.Background(), " "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestSQLiteStore_CloseWhileInUse(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "stepform.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Set(ctx, "multiStepFormData", []byte(`{}`)); err != nil && !errors.Is(err, ErrClosed) {
				t.Errorf("set: %v", err)
			}
			if _, err := store.Get(ctx, "multiStepFormData"); err != nil && !errors.Is(err, ErrClosed) && !errors.Is(err, ErrNotFound) {
				t.Errorf("get: %v", err)
			}
		}()
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	wg.Wait()

	if err := store.Set(ctx, "multiStepFormData", []byte(`{}`)); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed after close, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
