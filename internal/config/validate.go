package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIndex(); err != nil {
		return err
	}
	if err := c.validateRestart(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIndex() error {
	if c.Index.Workers < 1 || c.Index.Workers > maxIndexWorkers {
		return fmt.Errorf("index.workers must be between 1 and %d", maxIndexWorkers)
	}
	return nil
}

func (c *Config) validateRestart() error {
	if c.Restart.ShutdownWaitSeconds < 0 {
		return errors.New("restart.shutdown_wait_seconds must be non-negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
