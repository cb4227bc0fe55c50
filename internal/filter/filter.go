package filter

import (
	"fmt"
	"slices"
	"strings"

	"steamtools/internal/appmanifest"
)

// Kind selects one of the two file collections.
type Kind string

const (
	KindLua      Kind = "lua"
	KindManifest Kind = "manifest"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindLua, KindManifest}

// Ext returns the file extension for the kind, including the dot.
func (k Kind) Ext() string {
	switch k {
	case KindLua:
		return ".lua"
	case KindManifest:
		return ".manifest"
	default:
		return ""
	}
}

// ParseKind maps user input to a Kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindLua:
		return KindLua, nil
	case KindManifest, "manifests":
		return KindManifest, nil
	default:
		return "", fmt.Errorf("unknown file kind %q (want lua or manifest)", value)
	}
}

// KindForFile returns the kind matching name's extension, compared without
// regard to case.
func KindForFile(name string) (Kind, bool) {
	lower := strings.ToLower(name)
	for _, k := range Kinds {
		if strings.HasSuffix(lower, k.Ext()) {
			return k, true
		}
	}
	return "", false
}

// ByIdentifier returns just "<appID><ext>" when files contains it and the
// full listing otherwise.
func ByIdentifier(files []string, appID, ext string) []string {
	if appID != "" {
		target := appID + ext
		if slices.Contains(files, target) {
			return []string{target}
		}
	}
	return slices.Clone(files)
}

// ByDepot keeps files whose leading digit run is in depots. An empty depot
// set, or no match at all, returns the full listing.
func ByDepot(files []string, depots appmanifest.DepotSet) []string {
	if depots.Len() == 0 {
		return slices.Clone(files)
	}
	var out []string
	for _, name := range files {
		prefix := LeadingDigits(name)
		if prefix != "" && depots.Has(prefix) {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return slices.Clone(files)
	}
	return out
}

// Apply filters files of the given kind for rec. A nil record means no
// selection and returns the full listing.
func Apply(kind Kind, files []string, rec *appmanifest.Record) []string {
	if rec == nil {
		return slices.Clone(files)
	}
	switch kind {
	case KindLua:
		return ByIdentifier(files, rec.AppID, kind.Ext())
	case KindManifest:
		return ByDepot(files, rec.DepotIDs)
	default:
		return slices.Clone(files)
	}
}

// LeadingDigits returns the run of ASCII digits at the start of name.
func LeadingDigits(name string) string {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	return name[:end]
}
