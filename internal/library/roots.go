package library

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"steamtools/internal/logging"
	"steamtools/internal/vdf"
)

const (
	steamAppsDir       = "steamapps"
	libraryFoldersFile = "libraryfolders.vdf"
	keyLibraryFolders  = "libraryfolders"
	keyPath            = "path"
)

// EnumerateRoots returns the primary Steam root plus every extra library
// folder listed in its libraryfolders.vdf that exists on disk. Paths are
// absolute, cleaned, deduplicated and sorted. Any problem reading the file
// leaves just the primary root.
func EnumerateRoots(primary string) []string {
	return enumerateRoots(primary, nil)
}

func enumerateRoots(primary string, logger *slog.Logger) []string {
	if logger == nil {
		logger = logging.NewNop()
	}
	roots := map[string]struct{}{normalizePath(primary): {}}

	vdfPath := filepath.Join(primary, steamAppsDir, libraryFoldersFile)
	if info, err := os.Stat(vdfPath); err != nil || info.IsDir() {
		return sortedKeys(roots)
	}

	tree, err := vdf.ParseFile(vdfPath)
	if err != nil {
		logger.Debug("library folders unreadable",
			logging.String(logging.FieldEventType, "library_folders_unreadable"),
			logging.String(logging.FieldPath, vdfPath),
			logging.Error(err))
		return sortedKeys(roots)
	}

	folders, _ := tree.GetObject(keyLibraryFolders)
	for _, key := range folders.Keys() {
		var candidate string
		switch v := folders[key].(type) {
		case vdf.Object:
			candidate, _ = v.GetString(keyPath)
		case vdf.Scalar:
			candidate = string(v)
		}
		if candidate == "" || !isDir(candidate) {
			continue
		}
		roots[normalizePath(candidate)] = struct{}{}
	}
	return sortedKeys(roots)
}

func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
