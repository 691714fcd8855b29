package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "euncover"
	// GlobalConfigFile is the config file name in GlobalConfigDir.
	GlobalConfigFile = "config.yml"
)

// GlobalConfigPath returns the path to the per-user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/euncover/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// FindConfigFile picks the config file to load.
// An explicit path must exist. Otherwise euncover.yml in dir is preferred,
// then the per-user file; "" means run on defaults.
func FindConfigFile(explicit, dir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	local := filepath.Join(dir, ConfigFile)
	if isFile(local) {
		return local, nil
	}

	if global := GlobalConfigPath(); global != "" && isFile(global) {
		return global, nil
	}
	return "", nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// HelpfulConfigMessage explains where configuration is looked up.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`Configuration is read from, in order:
  --config <file>
  ./%s
  %s

Example:
  data_dir: /path/to/data
  listen: 127.0.0.1:8501`,
		ConfigFile,
		configPath)
}
