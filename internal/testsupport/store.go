package testsupport

import (
	"context"
	"testing"
	"time"

	"steamtools/internal/config"
	"steamtools/internal/indexstore"
	"steamtools/internal/library"
)

// MustOpenStore opens an indexstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *indexstore.Store {
	t.Helper()

	store, err := indexstore.Open(cfg, nil)
	if err != nil {
		t.Fatalf("indexstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustBuildIndex builds the index for a fake Steam root with a pinned clock.
func MustBuildIndex(t testing.TB, steamRoot string) *library.Index {
	t.Helper()

	built := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	idx, err := library.BuildIndex(context.Background(), steamRoot, library.Options{
		Workers: 2,
		Now:     func() time.Time { return built },
	})
	if err != nil {
		t.Fatalf("library.BuildIndex: %v", err)
	}
	return idx
}
