package preflight

import (
	"errors"
	"fmt"
	"os"

	"steamtools/internal/steamctl"
)

// CheckDirectoryAccess verifies that the directory exists and, when
// writable is set, that a file can be created inside it.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if !writable {
		return Result{Name: name, Passed: true, Detail: path}
	}
	probe, err := os.CreateTemp(path, ".steamtools-probe-*")
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", path, err)}
	}
	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSteamClient reports whether restart-steam can find the client.
func CheckSteamClient(steamPath string) Result {
	const name = "Steam client"
	exe, err := steamctl.New(steamPath).Executable()
	if err != nil {
		return Result{Name: name, Optional: true, Detail: "not found (restart-steam unavailable)"}
	}
	return Result{Name: name, Passed: true, Optional: true, Detail: exe}
}
