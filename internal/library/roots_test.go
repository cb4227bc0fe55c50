package library_test

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"steamtools/internal/library"
	"steamtools/internal/testsupport"
)

func TestEnumerateRootsPrimaryOnly(t *testing.T) {
	root := testsupport.SteamRoot(t)

	got := library.EnumerateRoots(root)
	if !reflect.DeepEqual(got, []string{root}) {
		t.Fatalf("unexpected roots %v", got)
	}
}

func TestEnumerateRootsReadsLibraryFolders(t *testing.T) {
	root := testsupport.SteamRoot(t)
	extra := testsupport.LibraryRoot(t)
	missing := filepath.Join(t.TempDir(), "unplugged-drive")

	// Object layout entries, a duplicate of the primary, a missing folder and
	// a path with redundant separators.
	testsupport.WriteLibraryFolders(t, root, root, extra+string(filepath.Separator), missing)

	got := library.EnumerateRoots(root)
	want := []string{root, extra}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected roots:\n got %v\nwant %v", got, want)
	}
}

func TestEnumerateRootsLegacyScalarLayout(t *testing.T) {
	root := testsupport.SteamRoot(t)
	extra := testsupport.LibraryRoot(t)
	body := "\"LibraryFolders\"\n{\n}\n\"libraryfolders\"\n{\n\t\"TimeNextStatsReport\"\t\"1700000000\"\n\t\"1\"\t\"" + extra + "\"\n}\n"
	testsupport.WriteSteamAppsFile(t, root, "libraryfolders.vdf", body)

	got := library.EnumerateRoots(root)
	if len(got) != 2 {
		t.Fatalf("expected primary plus legacy entry, got %v", got)
	}
}

func TestEnumerateRootsToleratesGarbage(t *testing.T) {
	root := testsupport.SteamRoot(t)
	testsupport.WriteSteamAppsFile(t, root, "libraryfolders.vdf", "\x00\x01{{{ not vdf")

	got := library.EnumerateRoots(root)
	if !reflect.DeepEqual(got, []string{root}) {
		t.Fatalf("unexpected roots %v", got)
	}
}

func TestEnumerateRootsNormalizesRelativePrimary(t *testing.T) {
	root := testsupport.SteamRoot(t)
	t.Chdir(filepath.Dir(root))

	got := library.EnumerateRoots(filepath.Join(".", "Steam", "."))
	if len(got) != 1 || !filepath.IsAbs(got[0]) || filepath.Base(got[0]) != "Steam" {
		t.Fatalf("expected absolute cleaned root, got %v", got)
	}
}
