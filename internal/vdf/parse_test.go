package vdf

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseNested(t *testing.T) {
	got := ParseString(`"A" { "B" "1" "C" { "D" "2" } }`)
	want := Object{
		"A": Object{
			"B": Scalar("1"),
			"C": Object{"D": Scalar("2")},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	got := ParseString(`"X" "1" "X" "2"`)
	if v, _ := got.GetString("X"); v != "2" {
		t.Fatalf("expected X=2, got %q", v)
	}

	got = ParseString(`"X" { "a" "1" } "X" "flat"`)
	if v, ok := got.GetString("X"); !ok || v != "flat" {
		t.Fatalf("expected scalar to replace object, got %#v", got["X"])
	}
}

func TestParseMissingCloseKeepsPartialTree(t *testing.T) {
	got := ParseString(`"A" { "B" "1"`)
	a, ok := got.GetObject("A")
	if !ok {
		t.Fatalf("expected object A, got %#v", got)
	}
	if v, _ := a.GetString("B"); v != "1" {
		t.Fatalf("expected A.B=1, got %q", v)
	}
}

func TestParseExtraClosesAreIgnoredAtRoot(t *testing.T) {
	got := ParseString(`} } "A" "1" } "B" { "C" "2" } } }`)
	want := Object{
		"A": Scalar("1"),
		"B": Object{"C": Scalar("2")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseKeyWithoutValue(t *testing.T) {
	// Trailing key at end of input.
	got := ParseString(`"A" "1" "B"`)
	if _, ok := got.Get("B"); ok {
		t.Fatalf("expected B to have no value, got %#v", got)
	}

	// A '}' in value position is consumed; the object stays open and
	// swallows the following key.
	got = ParseString(`"O" { "k" } "next" "v" }`)
	want := Object{"O": Object{"next": Scalar("v")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseStrayOpenIsSkipped(t *testing.T) {
	got := ParseString(`{ "A" "1" { "B" "2" }`)
	want := Object{"A": Scalar("1"), "B": Scalar("2")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseEmptyInput(t *testing.T) {
	got := Parse(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty object, got %#v", got)
	}
}

func TestParseFileDecodesLegacyEncodings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appmanifest_1.acf")
	// "Café" in Windows-1252 with a BOM-less body.
	body := []byte("\"AppState\" { \"name\" \"Caf\xe9\" }")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	tree, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	state, _ := tree.GetObject("AppState")
	if name, _ := state.GetString("name"); name != "Café" {
		t.Fatalf("expected decoded name, got %q", name)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.vdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
