package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SteamRoot creates an empty Steam install layout (steamapps plus the two
// config collections) under a fresh temp dir and returns its path.
func SteamRoot(t testing.TB) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Steam")
	for _, dir := range []string{
		filepath.Join(root, "steamapps"),
		filepath.Join(root, "config", "stplug-in"),
		filepath.Join(root, "config", "depotcache"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return root
}

// LibraryRoot creates a secondary library folder with a steamapps dir.
func LibraryRoot(t testing.TB) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "SteamLibrary")
	if err := os.MkdirAll(filepath.Join(root, "steamapps"), 0o755); err != nil {
		t.Fatalf("mkdir library: %v", err)
	}
	return root
}

// ManifestBody renders a minimal appmanifest with InstalledDepots entries.
func ManifestBody(appID, name string, depots ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"AppState\"\n{\n\t\"appid\"\t\t%q\n\t\"name\"\t\t%q\n", appID, name)
	b.WriteString("\t\"InstalledDepots\"\n\t{\n")
	for _, depot := range depots {
		fmt.Fprintf(&b, "\t\t%q\n\t\t{\n\t\t\t\"manifest\"\t\t\"1234567890\"\n\t\t}\n", depot)
	}
	b.WriteString("\t}\n}\n")
	return b.String()
}

// WriteManifest writes appmanifest_<appID>.acf under root/steamapps and
// returns its path.
func WriteManifest(t testing.TB, root, appID, name string, depots ...string) string {
	t.Helper()
	return WriteSteamAppsFile(t, root, "appmanifest_"+appID+".acf", ManifestBody(appID, name, depots...))
}

// WriteSteamAppsFile writes an arbitrary file under root/steamapps.
func WriteSteamAppsFile(t testing.TB, root, name, body string) string {
	t.Helper()

	path := filepath.Join(root, "steamapps", name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteLibraryFolders writes root/steamapps/libraryfolders.vdf in the
// current object layout, one entry per path.
func WriteLibraryFolders(t testing.TB, root string, paths ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, p := range paths {
		fmt.Fprintf(&b, "\t\"%d\"\n\t{\n\t\t\"path\"\t\t\"%s\"\n\t\t\"label\"\t\t\"\"\n\t}\n", i, p)
	}
	b.WriteString("}\n")
	return WriteSteamAppsFile(t, root, "libraryfolders.vdf", b.String())
}

// Touch creates empty files with the given names in dir.
func Touch(t testing.TB, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
