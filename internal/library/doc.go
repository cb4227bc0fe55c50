// Package library discovers Steam library folders and builds the index of
// installed apps across them.
//
// EnumerateRoots reads steamapps/libraryfolders.vdf under the Steam install
// to find every library root. BuildIndex scans each root's steamapps
// directory for appmanifest_*.acf files, extracts one record per manifest
// and returns an immutable Index sorted by name. A manifest that cannot be
// read or lacks the required fields is recorded in the build Report and
// skipped; it never fails the build.
//
// Session keeps the current Index for callers that want "build once, reuse,
// rebuild on demand" semantics. Rebuilds swap in a new Index atomically so
// readers never see a partial one.
package library
