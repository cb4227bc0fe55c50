// Package filter narrows collection listings to the files that belong to a
// selected app.
//
// Lua scripts are named after the app id, so the lua filter looks for
// "<appid>.lua". Depot manifests start with the depot id, so the manifest
// filter keeps names whose leading digits are one of the app's depots.
// Both filters fail open: when nothing matches, the caller gets the full
// listing back instead of an empty one.
package filter
