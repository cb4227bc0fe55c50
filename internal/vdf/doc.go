// Package vdf reads the quoted key/value text format Steam uses for
// appmanifest_*.acf and libraryfolders.vdf files.
//
// Parsing happens in two passes. Tokenize reduces raw text to quoted
// strings and braces, dropping everything else (comments, whitespace,
// unquoted words), and Parse folds those tokens into a tree of Object and
// Scalar nodes. Neither pass reports errors: unknown syntax is skipped and
// unbalanced braces leave a partial tree, because manifests in the wild
// carry extensions nobody documented.
//
// Lookups on the tree return (value, ok) pairs so callers can chain fallbacks
// without type switches.
package vdf
