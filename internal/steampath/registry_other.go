//go:build !windows

package steampath

func registryCandidates() []string { return nil }
