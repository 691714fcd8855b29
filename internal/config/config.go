// Package config handles dashboard configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/euncover/euncover/internal/dataset"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the dashboard configuration stored in euncover.yml.
type Config struct {
	DataDir          string `yaml:"data_dir"`
	BioFile          string `yaml:"bio_file"`
	DeclarationsFile string `yaml:"declarations_file"`
	NetworkFile      string `yaml:"network_file"`
	ArticlesFile     string `yaml:"articles_file"`
	LogoFile         string `yaml:"logo_file"`
	PipelineFile     string `yaml:"pipeline_file"`

	Listen    string `yaml:"listen"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text or json

	Backend string `yaml:"backend"` // files or sqlite
	DBPath  string `yaml:"db_path"`

	Layout    string        `yaml:"layout"`     // force, circle, or grid
	ScriptURL string        `yaml:"script_url"` // Cytoscape.js location
	Browser   string        `yaml:"browser"`    // "system" or a command
	CacheTTL  time.Duration `yaml:"cache_ttl"`

	RateLimit RateLimit `yaml:"rate_limit"`
}

// RateLimit configures per-client request throttling.
type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

const (
	// ConfigFile is the default config file name looked up in the working directory.
	ConfigFile = "euncover.yml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "EUNCOVER_"

	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

// ValidBackends lists the supported catalog backends.
var ValidBackends = []string{BackendFiles, BackendSQLite}

// ValidLogLevels lists the supported log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:          "data",
		BioFile:          "irelandMEPbio.csv",
		DeclarationsFile: "irelandDeclarations.json",
		NetworkFile:      "ireland_network_data.json",
		ArticlesFile:     "irelandMEPnews.csv",
		LogoFile:         "logo.svg",
		PipelineFile:     "pipeline_detailed.png",
		Listen:           "127.0.0.1:8501",
		LogLevel:         "info",
		LogFormat:        "text",
		Backend:          BackendFiles,
		DBPath:           filepath.Join(".euncover", "catalog.db"),
		Layout:           "force",
		Browser:          "system",
		CacheTTL:         10 * time.Minute,
		RateLimit: RateLimit{
			RPS:   10,
			Burst: 20,
		},
	}
}

// Load reads configuration from path on top of the defaults, then applies
// .env and EUNCOVER_* environment overrides. An empty path uses only
// defaults and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// A missing .env file is fine
	_ = godotenv.Load()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.DataDir = ExpandPath(cfg.DataDir)
	cfg.DBPath = ExpandPath(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from EUNCOVER_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DATA_DIR":          &c.DataDir,
		"BIO_FILE":          &c.BioFile,
		"DECLARATIONS_FILE": &c.DeclarationsFile,
		"NETWORK_FILE":      &c.NetworkFile,
		"ARTICLES_FILE":     &c.ArticlesFile,
		"LISTEN":            &c.Listen,
		"LOG_LEVEL":         &c.LogLevel,
		"LOG_FORMAT":        &c.LogFormat,
		"BACKEND":           &c.Backend,
		"DB_PATH":           &c.DBPath,
		"LAYOUT":            &c.Layout,
		"SCRIPT_URL":        &c.ScriptURL,
		"BROWSER":           &c.Browser,
	}
	for key, field := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %sCACHE_TTL: %w", EnvPrefix, err)
		}
		c.CacheTTL = d
	}
	if v, ok := lookup(EnvPrefix + "RATE_LIMIT_RPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %sRATE_LIMIT_RPS: %w", EnvPrefix, err)
		}
		c.RateLimit.RPS = f
	}
	if v, ok := lookup(EnvPrefix + "RATE_LIMIT_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %sRATE_LIMIT_BURST: %w", EnvPrefix, err)
		}
		c.RateLimit.Burst = n
	}
	return nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !contains(ValidBackends, c.Backend) {
		return fmt.Errorf("invalid backend: %s (valid: %v)", c.Backend, ValidBackends)
	}
	if !contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level: %s (valid: %v)", c.LogLevel, ValidLogLevels)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (valid: text, json)", c.LogFormat)
	}
	switch c.Layout {
	case "", "force", "circle", "grid":
	default:
		return fmt.Errorf("invalid layout: %s (valid: force, circle, grid)", c.Layout)
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate_limit.rps must be positive, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be positive, got %d", c.RateLimit.Burst)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl cannot be negative, got %v", c.CacheTTL)
	}
	if c.Browser != "" && strings.TrimSpace(c.Browser) == "" {
		return fmt.Errorf("browser cannot be blank (use %q for the default browser)", "system")
	}
	if c.Backend == BackendSQLite && c.DBPath == "" {
		return fmt.Errorf("db_path is required for the sqlite backend")
	}
	return nil
}

// DataPath resolves a data file name against DataDir.
// Absolute names are returned unchanged.
func (c *Config) DataPath(name string) string {
	name = ExpandPath(name)
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// DatasetPaths returns the resolved dataset file locations.
func (c *Config) DatasetPaths() dataset.Paths {
	return dataset.Paths{
		Biographies:  c.DataPath(c.BioFile),
		Declarations: c.DataPath(c.DeclarationsFile),
		Networks:     c.DataPath(c.NetworkFile),
		Articles:     c.DataPath(c.ArticlesFile),
	}
}

// Assets returns the static asset files served by name.
func (c *Config) Assets() map[string]string {
	assets := make(map[string]string, 2)
	for _, name := range []string{c.LogoFile, c.PipelineFile} {
		if name != "" {
			assets[filepath.Base(name)] = c.DataPath(name)
		}
	}
	return assets
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
