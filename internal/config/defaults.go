package config

import (
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

const (
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultShutdownWaitSeconds = 4
	maxIndexWorkers            = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
			LogDir:   defaultLogDir(),
		},
		Index: Index{
			Workers:     defaultWorkers(),
			UseSnapshot: true,
		},
		Restart: Restart{
			ShutdownWaitSeconds: defaultShutdownWaitSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultStateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

func defaultLogDir() string {
	return filepath.Join(xdg.StateHome, appName, "logs")
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > 8 {
		n = 8
	}
	if n < 1 {
		n = 1
	}
	return n
}
