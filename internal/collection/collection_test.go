package collection_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"steamtools/internal/collection"
	"steamtools/internal/filter"
	"steamtools/internal/testsupport"
)

func newStore(t *testing.T) (*collection.Store, collection.Layout) {
	t.Helper()
	root := testsupport.SteamRoot(t)
	layout := collection.NewLayout(root)
	lockPath := filepath.Join(t.TempDir(), "collection.lock")
	return collection.NewStore(layout, lockPath, nil), layout
}

func TestNewLayout(t *testing.T) {
	layout := collection.NewLayout("/steam")
	if layout.LuaDir != filepath.Join("/steam", "config", "stplug-in") {
		t.Fatalf("unexpected lua dir %q", layout.LuaDir)
	}
	if layout.ManifestDir != filepath.Join("/steam", "config", "depotcache") {
		t.Fatalf("unexpected manifest dir %q", layout.ManifestDir)
	}
}

func TestVerify(t *testing.T) {
	_, layout := newStore(t)
	if err := layout.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	missing := collection.NewLayout(t.TempDir())
	if err := missing.Verify(); err == nil {
		t.Fatal("expected error for missing folders")
	}
}

func TestListFiltersByExtension(t *testing.T) {
	store, layout := newStore(t)
	testsupport.Touch(t, layout.LuaDir, "730.lua", "10.LUA", "notes.txt")
	if err := os.Mkdir(filepath.Join(layout.LuaDir, "dir.lua"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got := store.List(filter.KindLua)
	want := []string{"10.LUA", "730.lua"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
}

func TestListMissingDirectory(t *testing.T) {
	store := collection.NewStore(collection.NewLayout(t.TempDir()), "", nil)
	if got := store.List(filter.KindManifest); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestRoute(t *testing.T) {
	store, layout := newStore(t)
	src := t.TempDir()
	testsupport.Touch(t, src, "730.lua", "731_123.manifest", "readme.txt")
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(filepath.Join(src, "730.lua"), stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	files := []string{
		filepath.Join(src, "730.lua"),
		filepath.Join(src, "731_123.manifest"),
		filepath.Join(src, "readme.txt"),
		filepath.Join(src, "missing.lua"),
		src,
	}
	result, err := store.Route(files)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if result.Copied != 2 || result.Skipped != 3 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	info, err := os.Stat(filepath.Join(layout.LuaDir, "730.lua"))
	if err != nil {
		t.Fatalf("stat copied lua: %v", err)
	}
	if !info.ModTime().Equal(stamp) {
		t.Fatalf("expected mtime %v, got %v", stamp, info.ModTime())
	}
	if _, err := os.Stat(filepath.Join(layout.ManifestDir, "731_123.manifest")); err != nil {
		t.Fatalf("stat copied manifest: %v", err)
	}
}

func TestRemove(t *testing.T) {
	store, layout := newStore(t)
	testsupport.Touch(t, layout.ManifestDir, "1_2.manifest")

	if err := store.Remove(filter.KindManifest, "1_2.manifest"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(layout.ManifestDir, "1_2.manifest")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be gone, stat err=%v", err)
	}
	if err := store.Remove(filter.KindManifest, "1_2.manifest"); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveRejectsPaths(t *testing.T) {
	store, _ := newStore(t)
	for _, name := range []string{"", "..", "../x.lua", "a/b.lua", `a\b.lua`} {
		if err := store.Remove(filter.KindLua, name); !errors.Is(err, collection.ErrInvalidName) {
			t.Fatalf("Remove(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestHasLua(t *testing.T) {
	store, layout := newStore(t)
	testsupport.Touch(t, layout.LuaDir, "730.lua")
	if !store.HasLua("730") {
		t.Fatal("expected lua for 730")
	}
	if store.HasLua("440") || store.HasLua("") {
		t.Fatal("unexpected lua match")
	}
}
