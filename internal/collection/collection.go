package collection

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"steamtools/internal/filter"
	"steamtools/internal/fileutil"
	"steamtools/internal/logging"
)

var (
	// ErrNotFound is returned when removing a file that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidName is returned for names that would escape the collection.
	ErrInvalidName = errors.New("invalid file name")
)

// Layout points at the two collection directories.
type Layout struct {
	LuaDir      string
	ManifestDir string
}

// NewLayout derives the collection directories from a Steam install path.
func NewLayout(steamPath string) Layout {
	return Layout{
		LuaDir:      filepath.Join(steamPath, "config", "stplug-in"),
		ManifestDir: filepath.Join(steamPath, "config", "depotcache"),
	}
}

// Dir returns the directory holding files of kind.
func (l Layout) Dir(kind filter.Kind) string {
	switch kind {
	case filter.KindLua:
		return l.LuaDir
	case filter.KindManifest:
		return l.ManifestDir
	default:
		return ""
	}
}

// Verify checks that both directories exist.
func (l Layout) Verify() error {
	for _, dir := range []string{l.LuaDir, l.ManifestDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("missing folder: %s", dir)
		}
	}
	return nil
}

// Entry is one file in a collection.
type Entry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// RouteResult summarizes a Route call.
type RouteResult struct {
	Copied  int      `json:"copied"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Store operates on a Layout. Mutations are serialized through lockPath
// when it is set.
type Store struct {
	layout Layout
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore wraps layout. An empty lockPath disables locking.
func NewStore(layout Layout, lockPath string, logger *slog.Logger) *Store {
	s := &Store{
		layout: layout,
		logger: logging.NewComponentLogger(logger, "collection"),
	}
	if strings.TrimSpace(lockPath) != "" {
		s.lock = flock.New(lockPath)
	}
	return s
}

// Layout returns the directories the store manages.
func (s *Store) Layout() Layout {
	return s.layout
}

// List returns the sorted file names of kind. An unreadable directory
// yields an empty list.
func (s *Store) List(kind filter.Kind) []string {
	entries := s.Entries(kind)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries is List with file sizes.
func (s *Store) Entries(kind filter.Kind) []Entry {
	dir := s.layout.Dir(kind)
	if dir == "" {
		return nil
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("collection directory unreadable",
			logging.String(logging.FieldPath, dir),
			logging.Error(err))
		return []Entry{}
	}
	ext := kind.Ext()
	out := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(de.Name()), ext) {
			continue
		}
		var size int64
		if info, err := de.Info(); err == nil {
			size = info.Size()
		}
		out = append(out, Entry{Name: de.Name(), Size: size})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HasLua reports whether <appID>.lua exists in the lua directory.
func (s *Store) HasLua(appID string) bool {
	if appID == "" {
		return false
	}
	return fileutil.IsRegularFile(filepath.Join(s.layout.LuaDir, appID+filter.KindLua.Ext()))
}

// Route copies each file into the directory matching its extension.
// Missing files, directories and other extensions are skipped; copy
// failures are collected and do not stop the remaining files.
func (s *Store) Route(files []string) (RouteResult, error) {
	var result RouteResult
	err := s.withLock(func() error {
		for _, src := range files {
			if !fileutil.IsRegularFile(src) {
				result.Skipped++
				continue
			}
			kind, ok := filter.KindForFile(src)
			if !ok {
				result.Skipped++
				continue
			}
			dst := filepath.Join(s.layout.Dir(kind), filepath.Base(src))
			if err := fileutil.CopyFilePreserve(src, dst); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(src), err))
				logging.WarnWithContext(s.logger, "file copy failed", "collection_copy_failed",
					logging.String(logging.FieldPath, src),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check the destination folder permissions"),
					logging.String(logging.FieldImpact, "file was not installed"))
				continue
			}
			result.Copied++
			s.logger.Debug("file routed",
				logging.String(logging.FieldPath, dst),
				logging.String("kind", string(kind)))
		}
		return nil
	})
	return result, err
}

// Remove deletes name from the collection of kind.
func (s *Store) Remove(kind filter.Kind, name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	dir := s.layout.Dir(kind)
	if dir == "" {
		return fmt.Errorf("unknown file kind %q", kind)
	}
	path := filepath.Join(dir, name)
	return s.withLock(func() error {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
		s.logger.Info("file removed",
			logging.String(logging.FieldEventType, "collection_file_removed"),
			logging.String(logging.FieldPath, path))
		return nil
	})
}

func (s *Store) withLock(fn func() error) error {
	if s.lock == nil {
		return fn()
	}
	if err := os.MkdirAll(filepath.Dir(s.lock.Path()), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire collection lock: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()
	return fn()
}
