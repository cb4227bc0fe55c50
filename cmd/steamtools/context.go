package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"steamtools/internal/collection"
	"steamtools/internal/config"
	"steamtools/internal/indexstore"
	"steamtools/internal/library"
	"steamtools/internal/logging"
	"steamtools/internal/steampath"
)

type rootFlags struct {
	config    string
	steamPath string
	json      bool
	logLevel  string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer
	loggerErr  error

	steamOnce sync.Once
	steamPath string
	steamErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closer, err := logging.NewFromConfig(cfg, c.flags.logLevel, uuid.NewString(), cmd.ErrOrStderr())
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
		c.logCloser = closer
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

// resolveSteamPath applies --steam-path, then steam.path (which already
// folds in STEAMTOOLS_STEAM_PATH), then platform discovery.
func (c *commandContext) resolveSteamPath() (string, error) {
	c.steamOnce.Do(func() {
		override := strings.TrimSpace(c.flags.steamPath)
		if override != "" {
			expanded, err := config.ExpandPath(override)
			if err != nil {
				c.steamErr = err
				return
			}
			override = expanded
		} else if cfg, err := c.ensureConfig(); err == nil {
			override = cfg.Steam.Path
		}
		path, err := steampath.Find(override)
		if errors.Is(err, steampath.ErrNotFound) {
			c.steamErr = fmt.Errorf("%w; pass --steam-path or set steam.path in the config", err)
			return
		}
		c.steamPath, c.steamErr = path, err
	})
	return c.steamPath, c.steamErr
}

func (c *commandContext) collectionStore() (*collection.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	steamPath, err := c.resolveSteamPath()
	if err != nil {
		return nil, err
	}
	return collection.NewStore(collection.NewLayout(steamPath), cfg.LockPath(), c.loggerValue()), nil
}

// loadIndex returns the stored snapshot when allowed, otherwise builds a
// fresh index and stores it. A snapshot that cannot be read falls back to
// a rebuild.
func (c *commandContext) loadIndex(ctx context.Context, rebuild bool) (*library.Index, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	steamPath, err := c.resolveSteamPath()
	if err != nil {
		return nil, err
	}
	logger := c.loggerValue()

	session := library.NewSession(steamPath, library.Options{Workers: cfg.Index.Workers, Logger: logger})

	store, err := indexstore.Open(cfg, logger)
	if err != nil {
		logging.WarnWithContext(logger, "index snapshot store unavailable", "snapshot_store_unavailable",
			logging.Error(err),
			logging.String(logging.FieldImpact, "index is rebuilt and not cached"))
		return session.Rebuild(ctx)
	}
	defer store.Close()

	if !rebuild && cfg.Index.UseSnapshot {
		idx, _, err := store.Latest(ctx, steamPath)
		switch {
		case err == nil:
			session.Seed(idx)
			return session.Index(ctx)
		case !errors.Is(err, indexstore.ErrNoSnapshot):
			logging.WarnWithContext(logger, "stored index unreadable", "snapshot_load_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "run `steamtools index` to rebuild"))
		}
	}

	idx, err := session.Rebuild(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := store.Save(ctx, steamPath, idx); err != nil {
		logging.WarnWithContext(logger, "index snapshot not saved", "snapshot_save_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "next listing rescans the libraries"))
	}
	return idx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
