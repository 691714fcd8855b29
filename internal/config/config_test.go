package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFile)
	content := `data_dir: /srv/euncover/data
listen: 0.0.0.0:9000
backend: sqlite
db_path: /srv/euncover/catalog.db
layout: circle
cache_ttl: 30s
rate_limit:
  rps: 2.5
  burst: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataDir != "/srv/euncover/data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Layout != "circle" {
		t.Errorf("Layout = %q", cfg.Layout)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.RateLimit.RPS != 2.5 || cfg.RateLimit.Burst != 5 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	// Unset keys keep their defaults
	if cfg.BioFile != "irelandMEPbio.csv" {
		t.Errorf("BioFile = %q, want default", cfg.BioFile)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EUNCOVER_DATA_DIR", "/env/data")
	t.Setenv("EUNCOVER_LISTEN", ":8080")
	t.Setenv("EUNCOVER_CACHE_TTL", "1m")
	t.Setenv("EUNCOVER_RATE_LIMIT_BURST", "7")
	t.Setenv("EUNCOVER_BROWSER", "firefox --new-tab")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/env/data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.RateLimit.Burst != 7 {
		t.Errorf("Burst = %d", cfg.RateLimit.Burst)
	}
	if cfg.Browser != "firefox --new-tab" {
		t.Errorf("Browser = %q", cfg.Browser)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("EUNCOVER_CACHE_TTL", "soon")

	if _, err := Load(""); err == nil {
		t.Error("Load() should fail on an unparseable duration")
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Error("Load() should return error when config not found")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write invalid config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "postgres" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"uppercase log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"unknown layout", func(c *Config) { c.Layout = "spiral" }, true},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, true},
		{"blank browser", func(c *Config) { c.Browser = "  " }, true},
		{"custom browser", func(c *Config) { c.Browser = "firefox --new-tab" }, false},
		{"sqlite without db path", func(c *Config) { c.Backend = BackendSQLite; c.DBPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatasetPaths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	cfg.ArticlesFile = "/elsewhere/news.csv"

	paths := cfg.DatasetPaths()
	if paths.Biographies != "/data/irelandMEPbio.csv" {
		t.Errorf("Biographies = %q", paths.Biographies)
	}
	if paths.Networks != "/data/ireland_network_data.json" {
		t.Errorf("Networks = %q", paths.Networks)
	}
	if paths.Articles != "/elsewhere/news.csv" {
		t.Errorf("Articles = %q, absolute path should be kept", paths.Articles)
	}

	assets := cfg.Assets()
	if assets["logo.svg"] != "/data/logo.svg" {
		t.Errorf("logo asset = %q", assets["logo.svg"])
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~/data", filepath.Join(home, "data")},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
