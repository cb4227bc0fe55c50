package library

// Status summarizes a build for presentation layers.
type Status string

const (
	// StatusOK means at least one record was indexed.
	StatusOK Status = "ok"
	// StatusNoLibraries means no root had a steamapps directory.
	StatusNoLibraries Status = "no_libraries"
	// StatusEmpty means libraries were scanned but no manifest produced a record.
	StatusEmpty Status = "empty"
)

// Skip records one manifest left out of the index.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report describes what a build looked at and what it dropped.
type Report struct {
	Roots        []string `json:"roots"`
	ScannedRoots int      `json:"scanned_roots"`
	Manifests    int      `json:"manifests"`
	Indexed      int      `json:"indexed"`
	Skipped      []Skip   `json:"skipped,omitempty"`
}

// Status derives the build status from the counters.
func (r Report) Status() Status {
	switch {
	case r.ScannedRoots == 0:
		return StatusNoLibraries
	case r.Indexed == 0:
		return StatusEmpty
	default:
		return StatusOK
	}
}

func (r Report) clone() Report {
	out := r
	out.Roots = append([]string(nil), r.Roots...)
	out.Skipped = append([]Skip(nil), r.Skipped...)
	return out
}
