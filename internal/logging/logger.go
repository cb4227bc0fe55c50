package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"steamtools/internal/config"
)

// LogFileName is the file written under the configured log directory.
const LogFileName = "steamtools.log"

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Console receives human output; nil means stderr.
	Console io.Writer
	// FilePath, when set, additionally receives JSON records at debug level.
	FilePath    string
	SessionID   string
	Development bool
}

// New constructs a slog logger using the provided options. The returned
// closer releases the log file and is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var consoleHandler slog.Handler
	switch format {
	case "json":
		consoleHandler = newJSONHandler(console, levelVar, addSource)
	case "console":
		consoleHandler = newPrettyHandler(console, levelVar, addSource)
	default:
		return nil, nopCloser{}, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	var closer io.Closer = nopCloser{}
	var fileHandler slog.Handler
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		fileLevel := new(slog.LevelVar)
		fileLevel.Set(slog.LevelDebug)
		fileHandler = newJSONHandler(file, fileLevel, true)
		closer = file
	}

	handler := newFanoutHandler(consoleHandler, fileHandler)
	if opts.SessionID != "" {
		handler = newSessionIDHandler(handler, opts.SessionID)
	}
	return slog.New(handler), closer, nil
}

// NewFromConfig creates a logger using application config defaults. The
// level argument, when non-empty, overrides the configured level.
func NewFromConfig(cfg *config.Config, level, sessionID string, console io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg == nil {
		return New(Options{Level: level, Format: "console", Console: console, SessionID: sessionID})
	}
	if strings.TrimSpace(level) == "" {
		level = cfg.Logging.Level
	}
	opts := Options{
		Level:     level,
		Format:    cfg.Logging.Format,
		Console:   console,
		SessionID: sessionID,
	}
	if cfg.Paths.LogDir != "" {
		opts.FilePath = filepath.Join(cfg.Paths.LogDir, LogFileName)
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
