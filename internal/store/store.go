package store

import (
	"context"
	"encoding/json"
)

// Store is the console's durable key-value surface. Every client-local
// slot (session, seen-sets, updates feed, project modules, notes,
// preferences) lives under one key and is replaced whole on write:
// last-write-wins, no merging.
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into out. A missing key, an
// unreadable store, or a malformed payload all report absent: corrupt
// local state degrades to defaults instead of failing the caller.
func GetJSON(ctx context.Context, s Store, key string, out any) bool {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
