package config

import (
	"fmt"
	"os"
	"strings"
)

// SteamPathEnv overrides steam.path when the file leaves it empty.
const SteamPathEnv = "STEAMTOOLS_STEAM_PATH"

func (c *Config) normalize() error {
	if err := c.normalizeSteam(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIndex()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSteam() error {
	c.Steam.Path = strings.TrimSpace(c.Steam.Path)
	if c.Steam.Path == "" {
		if value, ok := os.LookupEnv(SteamPathEnv); ok {
			c.Steam.Path = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Steam.Path, err = expandPath(c.Steam.Path); err != nil {
		return fmt.Errorf("steam.path: %w", err)
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir()
	}
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeIndex() {
	if c.Index.Workers <= 0 {
		c.Index.Workers = defaultWorkers()
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
