package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrEmptyKey is returned when a blank key is used.
	ErrEmptyKey = errors.New("storage: key is required")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("storage: store is closed")
	// ErrUnknownBackend is returned by Open for unsupported backend names.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Store is a string-keyed value store.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config selects and configures a backend.
type Config struct {
	Backend string
	// Path is the file or database location for disk-backed stores.
	Path string
}

// Open builds the store described by cfg. An empty backend selects memory.
func Open(ctx context.Context, cfg Config) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(cfg.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

func cloneBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
