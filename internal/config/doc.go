// Package config loads, normalizes, and validates steamtools configuration.
//
// It supplies defaults rooted in the XDG base directories, expands user
// paths (including tilde shortcuts), reads TOML files, and honours the
// STEAMTOOLS_STEAM_PATH environment fallback. Every command obtains its
// settings through this package so downstream code receives absolute paths
// and canonical log settings.
package config
