package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes size bytes of filler to path, creating parent dirs.
// Collection listings report these sizes, so tests can assert on them.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'B'}, int(size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
