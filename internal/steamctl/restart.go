package steamctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"steamtools/internal/logging"
)

// ErrSteamNotFound is returned when no Steam executable can be located.
var ErrSteamNotFound = errors.New("steam executable not found")

const (
	defaultShutdownWait = 4 * time.Second
	killSettle          = time.Second
)

// Executor abstracts process execution for testability.
type Executor interface {
	// Start launches binary without waiting for it to exit.
	Start(binary string, args []string) error
	// Run launches binary and waits for it.
	Run(ctx context.Context, binary string, args []string) error
}

type commandExecutor struct{}

func (commandExecutor) Start(binary string, args []string) error {
	cmd := exec.Command(binary, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	return exec.CommandContext(ctx, binary, args...).Run()
}

// Option configures a Controller.
type Option func(*Controller)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(e Executor) Option {
	return func(c *Controller) {
		if e != nil {
			c.exec = e
		}
	}
}

// WithShutdownWait sets how long to wait after requesting shutdown.
// Negative values are ignored.
func WithShutdownWait(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.shutdownWait = d
		}
	}
}

// WithGOOS overrides the platform the restart sequence targets.
func WithGOOS(goos string) Option {
	return func(c *Controller) {
		if goos != "" {
			c.goos = goos
		}
	}
}

// WithSleep replaces the wait function (primarily for tests).
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logging.NewComponentLogger(logger, "steamctl")
	}
}

// Controller restarts the Steam client installed at steamPath.
type Controller struct {
	steamPath    string
	goos         string
	shutdownWait time.Duration
	exec         Executor
	sleep        func(context.Context, time.Duration) error
	logger       *slog.Logger
}

// New constructs a Controller.
func New(steamPath string, opts ...Option) *Controller {
	c := &Controller{
		steamPath:    steamPath,
		goos:         runtime.GOOS,
		shutdownWait: defaultShutdownWait,
		exec:         commandExecutor{},
		sleep:        sleepContext,
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Executable returns the Steam client binary for the target platform.
func (c *Controller) Executable() (string, error) {
	if c.goos == "windows" {
		exe := filepath.Join(c.steamPath, "steam.exe")
		if isFile(exe) {
			return exe, nil
		}
		return "", fmt.Errorf("%w: %s", ErrSteamNotFound, exe)
	}
	if c.steamPath != "" {
		if script := filepath.Join(c.steamPath, "steam.sh"); isFile(script) {
			return script, nil
		}
	}
	if path, err := exec.LookPath("steam"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("%w: no steam.sh under %s and no steam on PATH", ErrSteamNotFound, c.steamPath)
}

// Restart shuts Steam down and launches it again.
func (c *Controller) Restart(ctx context.Context) error {
	exe, err := c.Executable()
	if err != nil {
		return err
	}
	c.logger.Info("restarting steam",
		logging.String(logging.FieldEventType, "steam_restart"),
		logging.String(logging.FieldPath, exe))

	if err := c.exec.Start(exe, []string{"-shutdown"}); err != nil {
		return fmt.Errorf("request steam shutdown: %w", err)
	}
	if err := c.sleep(ctx, c.shutdownWait); err != nil {
		return err
	}
	if c.goos == "windows" {
		// taskkill exits non-zero when Steam already stopped.
		if err := c.exec.Run(ctx, "taskkill", []string{"/F", "/IM", "steam.exe"}); err != nil {
			c.logger.Debug("taskkill returned error", logging.Error(err))
		}
		if err := c.sleep(ctx, killSettle); err != nil {
			return err
		}
	}
	if err := c.exec.Start(exe, nil); err != nil {
		return fmt.Errorf("launch steam: %w", err)
	}
	return nil
}

// Restart is a convenience wrapper around New(steamPath, opts...).Restart.
func Restart(ctx context.Context, steamPath string, opts ...Option) error {
	return New(steamPath, opts...).Restart(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
