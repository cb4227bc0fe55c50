package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"steamtools/internal/config"
	"steamtools/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	steamRoot  string
	extraRoot  string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.SteamPathEnv, "")

	steam := testsupport.SteamRoot(t)
	extra := testsupport.LibraryRoot(t)
	testsupport.WriteLibraryFolders(t, steam, steam, extra)
	testsupport.WriteManifest(t, steam, "730", "Counter-Strike 2", "731", "732")
	testsupport.WriteManifest(t, extra, "440", "Team Fortress 2", "441")

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithSteamPath(steam)}, opts...)...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "steamtools.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, steamRoot: steam, extraRoot: extra}
}

func (e *cliTestEnv) luaDir() string {
	return filepath.Join(e.steamRoot, "config", "stplug-in")
}

func (e *cliTestEnv) manifestDir() string {
	return filepath.Join(e.steamRoot, "config", "depotcache")
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
