package preflight

import (
	"path/filepath"

	"steamtools/internal/collection"
	"steamtools/internal/config"
	"steamtools/internal/filter"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Optional bool   `json:"optional,omitempty"`
	Detail   string `json:"detail"`
}

// RunAll executes every check for the resolved Steam install.
func RunAll(cfg *config.Config, steamPath string) []Result {
	layout := collection.NewLayout(steamPath)

	results := []Result{
		CheckDirectoryAccess("Steam install", steamPath, false),
		CheckDirectoryAccess("steamapps", filepath.Join(steamPath, "steamapps"), false),
		CheckDirectoryAccess("Lua collection", layout.Dir(filter.KindLua), true),
		CheckDirectoryAccess("Manifest collection", layout.Dir(filter.KindManifest), true),
	}
	if cfg != nil {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir, true))
	}
	results = append(results, CheckSteamClient(steamPath))
	return results
}

// Failed counts required checks that did not pass.
func Failed(results []Result) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Optional {
			count++
		}
	}
	return count
}
