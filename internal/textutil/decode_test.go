package textutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		want     string
		encoding Encoding
	}{
		{"bom", []byte("\xEF\xBB\xBF\"name\" \"x\""), `"name" "x"`, EncodingUTF8BOM},
		{"utf8", []byte("Über"), "Über", EncodingUTF8},
		{"empty", nil, "", EncodingUTF8},
		{"cp1252", []byte("\x93quoted\x94 caf\xe9"), "“quoted” café", EncodingWindows1252},
		{"latin1 fallback", []byte("a\x81b\xe9"), "a\u0081bé", EncodingLatin1},
		{"bom with invalid body", []byte("\xEF\xBB\xBFcaf\xe9"), "ï»¿café", EncodingWindows1252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc := DecodeDetect(tt.input)
			if got != tt.want {
				t.Errorf("DecodeDetect() text = %q, want %q", got, tt.want)
			}
			if enc != tt.encoding {
				t.Errorf("DecodeDetect() encoding = %q, want %q", enc, tt.encoding)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libraryfolders.vdf")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF\"libraryfolders\" {}"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if got != `"libraryfolders" {}` {
		t.Fatalf("unexpected text %q", got)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
