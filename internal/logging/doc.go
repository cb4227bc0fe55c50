// Package logging assembles structured slog loggers and formatting helpers
// used across steamtools.
//
// It owns the console and JSON handlers, fans records out to the terminal
// and to the log file under the configured log directory, and stamps every
// record with the invocation's session ID. The package also
// provides a no-op logger for tests and library code that is handed a nil
// logger.
package logging
