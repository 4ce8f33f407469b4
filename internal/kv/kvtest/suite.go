// Package kvtest holds a compliance suite shared by kv.Store drivers.
package kvtest

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/studykeep/studykeep/internal/kv"
)

// Run exercises a minimal compliance suite against a kv.Store
// implementation. Drivers should provide a clean, isolated store from
// makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) kv.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Unique key so suites can run against shared databases.
	key := "kvtest-" + uuid.New().String()

	if err := s.HealthPing(ctx); err != nil {
		t.Fatalf("HealthPing: %v", err)
	}

	// Absent key reads as not-found, not as an error.
	if v, ok, err := s.Get(ctx, key); err != nil || ok || v != "" {
		t.Fatalf("Get absent: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := s.Set(ctx, key, `{"n":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get(ctx, key); err != nil || !ok || v != `{"n":1}` {
		t.Fatalf("Get after set: v=%q ok=%v err=%v", v, ok, err)
	}

	// Second set replaces the whole value.
	if err := s.Set(ctx, key, `{"n":2}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, err := s.Get(ctx, key); err != nil || v != `{"n":2}` {
		t.Fatalf("Get after overwrite: v=%q err=%v", v, err)
	}

	// Keys are independent.
	other := key + "-other"
	if err := s.Set(ctx, other, "x"); err != nil {
		t.Fatalf("Set other: %v", err)
	}
	if v, _, err := s.Get(ctx, key); err != nil || v != `{"n":2}` {
		t.Fatalf("Get unrelated overwrite: v=%q err=%v", v, err)
	}
}
