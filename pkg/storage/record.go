package storage

import (
	"context"
	"fmt"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/schema"
)

// LoadRecord reads the record persisted under key and checks it against the
// FormRecord schema. A missing key returns ErrNotFound; a payload that does
// not match the schema wraps schema.ErrInvalidPayload.
func LoadRecord(ctx context.Context, store Store, key string) (record.Record, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return record.Record{}, err
	}
	rec, err := schema.DecodeRecord(raw)
	if err != nil {
		return record.Record{}, fmt.Errorf("storage: load %q: %w", key, err)
	}
	return rec, nil
}
