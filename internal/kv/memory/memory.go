// Package memory implements kv.Store in process memory. Used by tests
// and available as an ephemeral driver.
package memory

import (
	"context"
	"sync"

	"github.com/studykeep/studykeep/internal/kv"
)

type memStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// New returns an empty in-memory store.
func New() kv.Store {
	return &memStore{blobs: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *memStore) HealthPing(context.Context) error { return nil }

func (s *memStore) Close() error { return nil }
