package library_test

import (
	"context"
	"testing"
	"time"

	"steamtools/internal/appmanifest"
	"steamtools/internal/library"
	"steamtools/internal/testsupport"
)

func TestSessionBuildsOnceAndRebuilds(t *testing.T) {
	root := testsupport.SteamRoot(t)
	testsupport.WriteManifest(t, root, "1", "One")

	session := library.NewSession(root, library.Options{})
	if session.Current() != nil {
		t.Fatal("expected no index before first use")
	}

	first, err := session.Index(context.Background())
	if err != nil {
		t.Fatalf("Index returned error: %v", err)
	}
	testsupport.WriteManifest(t, root, "2", "Two")

	again, err := session.Index(context.Background())
	if err != nil {
		t.Fatalf("Index returned error: %v", err)
	}
	if again != first || again.Len() != 1 {
		t.Fatalf("expected cached snapshot, got %d records", again.Len())
	}

	rebuilt, err := session.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}
	if rebuilt.Len() != 2 || first.Len() != 1 {
		t.Fatalf("rebuild must not touch the old snapshot: old=%d new=%d", first.Len(), rebuilt.Len())
	}
	if session.Current() != rebuilt {
		t.Fatal("expected rebuilt snapshot to become current")
	}
}

func TestSessionSeed(t *testing.T) {
	session := library.NewSession(t.TempDir(), library.Options{})
	seeded := library.NewIndex([]appmanifest.Record{{AppID: "5", Name: "Seeded"}}, library.Report{Indexed: 1, ScannedRoots: 1}, time.Now())
	session.Seed(seeded)

	got, err := session.Index(context.Background())
	if err != nil {
		t.Fatalf("Index returned error: %v", err)
	}
	if got != seeded {
		t.Fatal("expected seeded index to be returned")
	}
}

func TestIndexRecordsAreCopies(t *testing.T) {
	idx := library.NewIndex([]appmanifest.Record{{AppID: "1", Name: "b"}, {AppID: "2", Name: "A"}}, library.Report{}, time.Time{})
	recs := idx.Records()
	recs[0].Name = "mutated"
	if idx.Records()[0].Name != "A" {
		t.Fatal("mutating the returned slice changed the index")
	}

	var nilIdx *library.Index
	if nilIdx.Len() != 0 || nilIdx.Records() != nil {
		t.Fatal("nil index should behave as empty")
	}
}
