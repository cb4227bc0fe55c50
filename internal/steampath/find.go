package steampath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when no candidate directory exists.
var ErrNotFound = errors.New("steam installation not found")

// Find returns the Steam install directory. A non-empty override must be an
// existing directory.
func Find(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		if !isDir(override) {
			return "", fmt.Errorf("steam path %q is not a directory", override)
		}
		return filepath.Clean(override), nil
	}

	home, _ := os.UserHomeDir()
	candidates := append(registryCandidates(), defaultCandidates(runtime.GOOS, home)...)
	if path, ok := firstDir(candidates); ok {
		return path, nil
	}
	return "", ErrNotFound
}

// defaultCandidates lists conventional install locations per platform.
func defaultCandidates(goos, home string) []string {
	switch goos {
	case "windows":
		return []string{`C:\Program Files (x86)\Steam`, `C:\Program Files\Steam`}
	case "darwin":
		if home == "" {
			return nil
		}
		return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
	default:
		if home == "" {
			return nil
		}
		return []string{
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".steam", "root"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"),
		}
	}
}

func firstDir(candidates []string) (string, bool) {
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if isDir(c) {
			return filepath.Clean(c), true
		}
	}
	return "", false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
