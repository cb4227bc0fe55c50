// Package appmanifest extracts installed-app records from parsed
// appmanifest_*.acf trees.
//
// Manifest layouts drift between Steam client versions, so extraction is
// tolerant: the app ID and name are read from either spelling of their keys,
// and depot IDs are collected from InstalledDepots, MountedDepots and any
// other key whose name mentions depots. A tree without an AppState object or
// an app ID yields no record rather than an error.
package appmanifest
