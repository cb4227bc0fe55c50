package appmanifest

import (
	"errors"
	"fmt"
	"strings"

	"steamtools/internal/vdf"
)

var (
	// ErrNoAppState is returned when a manifest has no AppState object.
	ErrNoAppState = errors.New("manifest has no AppState object")
	// ErrNoAppID is returned when AppState carries no app id.
	ErrNoAppID = errors.New("manifest has no app id")
)

const (
	keyAppState        = "AppState"
	keyInstalledDepots = "InstalledDepots"
	keyMountedDepots   = "MountedDepots"
	depotsMarker       = "depots"
)

var (
	appIDKeys = []string{"appid", "AppID"}
	nameKeys  = []string{"name", "Name"}
)

// Extract reads the record held by one manifest tree. Library and
// ManifestPath are left for the caller to fill in.
func Extract(root vdf.Object) (Record, bool) {
	rec, err := extract(root)
	return rec, err == nil
}

func extract(root vdf.Object) (Record, error) {
	state, ok := root.GetObject(keyAppState)
	if !ok {
		return Record{}, ErrNoAppState
	}
	appID, ok := state.FirstString(appIDKeys...)
	if !ok {
		return Record{}, ErrNoAppID
	}
	name, _ := state.FirstString(nameKeys...)

	depots := DepotSet{}
	if obj, ok := state.GetObject(keyInstalledDepots); ok {
		collectDepots(depots, obj)
	}
	if obj, ok := state.GetObject(keyMountedDepots); ok {
		collectDepots(depots, obj)
	}
	for key, node := range state {
		if !strings.Contains(strings.ToLower(key), depotsMarker) {
			continue
		}
		if obj, ok := node.(vdf.Object); ok {
			collectDepots(depots, obj)
		}
	}

	return Record{AppID: appID, Name: name, DepotIDs: depots}, nil
}

// collectDepots adds numeric keys of obj and numeric keys one level below
// each of its object values (depot -> manifest id layouts).
func collectDepots(dst DepotSet, obj vdf.Object) {
	for key, node := range obj {
		dst.add(key)
		child, ok := node.(vdf.Object)
		if !ok {
			continue
		}
		for childKey := range child {
			dst.add(childKey)
		}
	}
}

// ParseFile reads, decodes, parses and extracts the manifest at path. The
// returned record has ManifestPath set.
func ParseFile(path string) (Record, error) {
	root, err := vdf.ParseFile(path)
	if err != nil {
		return Record{}, err
	}
	rec, err := extract(root)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	rec.ManifestPath = path
	return rec, nil
}
