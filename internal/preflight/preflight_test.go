package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"steamtools/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected probe file to be removed, found %d entries", len(entries))
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), false)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestRunAll(t *testing.T) {
	steam := testsupport.SteamRoot(t)
	cfg := testsupport.NewConfig(t, testsupport.WithSteamPath(steam))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	t.Setenv("PATH", t.TempDir())

	results := RunAll(cfg, steam)
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	if got := Failed(results); got != 0 {
		t.Fatalf("expected no required failures, got %d: %+v", got, results)
	}
	client := results[len(results)-1]
	if client.Passed || !client.Optional {
		t.Fatalf("expected optional missing client, got %+v", client)
	}
}

func TestRunAllMissingCollections(t *testing.T) {
	steam := filepath.Join(t.TempDir(), "Steam")
	if err := os.MkdirAll(filepath.Join(steam, "steamapps"), 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(nil, steam)
	if got := Failed(results); got != 2 {
		t.Fatalf("expected lua and manifest checks to fail, got %d: %+v", got, results)
	}
}
