// Package steamctl restarts the Steam client so it picks up new plugin
// files.
//
// The sequence asks Steam to shut down, waits, force-kills the process on
// Windows, and launches the client again. Commands go through an Executor
// so tests can record them instead of spawning processes.
package steamctl
