package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := GlobalConfigPath(), "/custom/config/euncover/config.yml"; got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}

	// Empty XDG_CONFIG_HOME falls back to ~/.config
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	want := filepath.Join(home, ".config", "euncover", "config.yml")
	if got := GlobalConfigPath(); got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	workDir := t.TempDir()

	// Nothing anywhere
	got, err := FindConfigFile("", workDir)
	if err != nil || got != "" {
		t.Fatalf("FindConfigFile() = %q, %v; want empty, nil", got, err)
	}

	// Per-user file
	globalPath := filepath.Join(xdg, GlobalConfigDir, GlobalConfigFile)
	if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(globalPath, []byte("listen: :1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got, _ := FindConfigFile("", workDir); got != globalPath {
		t.Errorf("FindConfigFile() = %q, want %q", got, globalPath)
	}

	// Local file wins over the per-user file
	localPath := filepath.Join(workDir, ConfigFile)
	if err := os.WriteFile(localPath, []byte("listen: :2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got, _ := FindConfigFile("", workDir); got != localPath {
		t.Errorf("FindConfigFile() = %q, want %q", got, localPath)
	}

	// Explicit path wins, and must exist
	if got, _ := FindConfigFile(globalPath, workDir); got != globalPath {
		t.Errorf("FindConfigFile(explicit) = %q, want %q", got, globalPath)
	}
	if _, err := FindConfigFile(filepath.Join(workDir, "nope.yml"), workDir); err == nil {
		t.Error("FindConfigFile() should fail for a missing explicit path")
	}
}
