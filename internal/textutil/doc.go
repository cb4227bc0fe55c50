// Package textutil turns raw file bytes into text without ever failing, and
// matches user search terms against game names.
//
// Steam writes its manifests as UTF-8, but files touched by older tools or
// hand edits turn up in legacy Windows code pages. Decode walks a fixed list
// of encodings (UTF-8 with and without a byte-order mark, Windows-1252,
// ISO-8859-1) and ends with a lossy UTF-8 pass, so callers always get a
// string to parse.
package textutil
