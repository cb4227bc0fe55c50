package appmanifest

import (
	"encoding/json"
	"sort"
)

// Record describes one installed app found in a manifest.
type Record struct {
	AppID        string   `json:"app_id" yaml:"app_id"`
	Name         string   `json:"name" yaml:"name"`
	DepotIDs     DepotSet `json:"depot_ids" yaml:"depot_ids"`
	Library      string   `json:"library" yaml:"library"`
	ManifestPath string   `json:"manifest_path" yaml:"manifest_path"`
}

// DepotSet holds numeric depot identifiers.
type DepotSet map[string]struct{}

// NewDepotSet builds a set from ids. Non-numeric ids are dropped.
func NewDepotSet(ids ...string) DepotSet {
	set := make(DepotSet, len(ids))
	for _, id := range ids {
		set.add(id)
	}
	return set
}

func (s DepotSet) add(id string) {
	if IsNumeric(id) {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s DepotSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s DepotSet) Len() int { return len(s) }

// Sorted returns the ids in numeric order.
func (s DepotSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
	return ids
}

func (s DepotSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *DepotSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewDepotSet(ids...)
	return nil
}

func (s DepotSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

// IsNumeric reports whether s is non-empty and made only of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
