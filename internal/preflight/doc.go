// Package preflight provides readiness checks for the Steam install and the
// local directories steamtools writes to.
//
// The CLI "steamtools status" command runs RunAll and renders one line per
// check. Checks never fail hard: each one returns a Result describing what
// it found so the whole report is shown even when Steam is half set up.
package preflight
