// Package kv defines the key-value blob provider the persistence
// bridge writes snapshots through. Implementations live under
// internal/kv/<driver>/ (sqlite, postgres, memory).
package kv

import "context"

// Store exposes get/set of a single text blob by key. Set overwrites
// the whole value; there are no partial writes.
type Store interface {
	// Get returns the stored value and true, or ("", false, nil) when
	// the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any prior content.
	Set(ctx context.Context, key, value string) error
	// HealthPing verifies the provider is reachable.
	HealthPing(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}
