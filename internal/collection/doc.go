// Package collection manages the two plugin folders under Steam's config
// directory: stplug-in for .lua scripts and depotcache for .manifest files.
//
// It lists their contents, routes incoming files into the right folder by
// extension, and removes single entries. Mutations take an advisory file
// lock so two steamtools processes never interleave copies and deletes.
package collection
