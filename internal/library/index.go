package library

import (
	"slices"
	"strings"
	"time"

	"steamtools/internal/appmanifest"
)

// Index is an immutable, name-sorted collection of installed-app records.
// It is safe for concurrent readers.
type Index struct {
	records []appmanifest.Record
	byAppID map[string]int
	report  Report
	builtAt time.Time
}

// NewIndex sorts records by name (case-insensitive, stable on ties) and
// wraps them in an Index. The slice is copied.
func NewIndex(records []appmanifest.Record, report Report, builtAt time.Time) *Index {
	sorted := slices.Clone(records)
	sortRecords(sorted)

	byAppID := make(map[string]int, len(sorted))
	for i, rec := range sorted {
		if _, exists := byAppID[rec.AppID]; !exists {
			byAppID[rec.AppID] = i
		}
	}
	return &Index{
		records: sorted,
		byAppID: byAppID,
		report:  report.clone(),
		builtAt: builtAt,
	}
}

func sortRecords(records []appmanifest.Record) {
	slices.SortStableFunc(records, func(a, b appmanifest.Record) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

// Records returns a copy of the sorted records.
func (i *Index) Records() []appmanifest.Record {
	if i == nil {
		return nil
	}
	return slices.Clone(i.records)
}

// Len returns the number of records.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.records)
}

// Lookup returns the first record (in index order) with the given app id.
func (i *Index) Lookup(appID string) (appmanifest.Record, bool) {
	if i == nil {
		return appmanifest.Record{}, false
	}
	pos, ok := i.byAppID[appID]
	if !ok {
		return appmanifest.Record{}, false
	}
	return i.records[pos], true
}

// Report returns the diagnostics gathered while building the index.
func (i *Index) Report() Report {
	if i == nil {
		return Report{}
	}
	return i.report.clone()
}

// Status is shorthand for Report().Status().
func (i *Index) Status() Status {
	if i == nil {
		return StatusNoLibraries
	}
	return i.report.Status()
}

// BuiltAt returns when the index was built.
func (i *Index) BuiltAt() time.Time {
	if i == nil {
		return time.Time{}
	}
	return i.builtAt
}
