// Package main hosts the steamtools CLI entrypoint and command graph.
//
// The Cobra command tree lists Steam library folders, builds and caches the
// installed-app index, filters the lua and manifest collections per game,
// installs or removes plugin files, checks the install, and restarts the
// Steam client. It centralizes configuration resolution, Steam path
// discovery, and logging setup so subcommands only format results.
package main
