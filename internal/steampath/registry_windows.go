//go:build windows

package steampath

import (
	"golang.org/x/sys/windows/registry"
)

type registryProbe struct {
	root   registry.Key
	path   string
	values []string
}

var registryProbes = []registryProbe{
	{registry.CURRENT_USER, `Software\Valve\Steam`, []string{"SteamPath", "InstallPath"}},
	{registry.LOCAL_MACHINE, `SOFTWARE\Valve\Steam`, []string{"InstallPath", "SteamPath"}},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Valve\Steam`, []string{"InstallPath", "SteamPath"}},
}

// registryCandidates returns every string value the Steam installer leaves
// behind, in lookup order. Missing keys and values are skipped.
func registryCandidates() []string {
	var out []string
	for _, probe := range registryProbes {
		k, err := registry.OpenKey(probe.root, probe.path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		for _, name := range probe.values {
			v, _, err := k.GetStringValue(name)
			if err != nil || v == "" {
				continue
			}
			out = append(out, v)
		}
		k.Close()
	}
	return out
}
