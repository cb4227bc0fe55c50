// Package steampath locates the Steam installation directory.
//
// An explicit path (from the command line, config file or the
// STEAMTOOLS_STEAM_PATH environment variable) always wins. Otherwise the
// Windows registry is consulted, then the platform's usual install
// locations.
package steampath
