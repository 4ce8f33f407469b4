package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/studykeep/studykeep/internal/kv"
	"github.com/studykeep/studykeep/internal/kv/kvtest"
)

func makeSqliteStore(t *testing.T) kv.Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "studykeep.db"))
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSqliteStore_Compliance(t *testing.T) {
	kvtest.Run(t, makeSqliteStore)
}

func TestSqliteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studykeep.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "snapshot", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()
	v, ok, err := s2.Get(ctx, "snapshot")
	if err != nil || !ok || v != "payload" {
		t.Fatalf("get after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}
