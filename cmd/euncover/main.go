// Package main provides the euncover CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/euncover/euncover/internal/config"
	"github.com/euncover/euncover/internal/dashboard"
	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/logger"
	"github.com/euncover/euncover/internal/storage"
	"github.com/euncover/euncover/internal/viz"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath is the --config flag value
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "euncover",
	Short: "Dashboard of Irish MEPs, their declarations and networks",
	Long: `euncover serves a dashboard about the Irish Members of the European
Parliament: biographies, declarations of interest, relationship networks and
news coverage, all read from local CSV/JSON fixtures.

Data files are read from data_dir (default ./data). Settings come from
euncover.yml, a .env file and EUNCOVER_* environment variables.
All commands output JSON by default; use --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./euncover.yml)")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	path, err := config.FindConfigFile(configPath, cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		exitWithError(ExitConfigError, "%v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newLogger builds the stderr logger configured by cfg.
func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// mustOpenCatalog opens the configured catalog backend, exits on error.
// The returned function releases it.
func mustOpenCatalog(cfg *config.Config) (dataset.Catalog, func()) {
	if cfg.Backend != config.BackendSQLite {
		return dataset.NewFiles(cfg.DatasetPaths()).WithLogger(newLogger(cfg)), func() {}
	}

	db, err := storage.OpenBuilt(context.Background(), cfg.DBPath)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrMissing):
			exitWithError(ExitIndexStale, "catalog index not found at %s\n\nRun 'euncover rebuild' to create it.", cfg.DBPath)
		case errors.Is(err, storage.ErrNotBuilt):
			exitWithError(ExitIndexStale, "catalog index at %s is empty\n\nRun 'euncover rebuild' to populate it.", cfg.DBPath)
		}
		exitWithError(ExitError, "opening catalog index: %v", err)
	}
	return db, func() { db.Close() }
}

// htmlOptions returns the network page options from cfg.
func htmlOptions(cfg *config.Config) viz.HTMLOptions {
	opts := viz.DefaultOptions()
	if cfg.Layout != "" {
		opts.Layout = cfg.Layout
	}
	if cfg.ScriptURL != "" {
		opts.ScriptURL = cfg.ScriptURL
	}
	return opts
}

// newController wires a dashboard controller from cfg.
func newController(cfg *config.Config, catalog dataset.Catalog, log *slog.Logger, onPanelError func(panel, kind string)) *dashboard.Controller {
	return dashboard.New(catalog, dashboard.Options{
		HTML:         htmlOptions(cfg),
		CacheTTL:     cfg.CacheTTL,
		Logger:       log,
		OnPanelError: onPanelError,
	})
}

// mustParseSelection validates an MEP name argument, exits on error.
// The placeholder is rejected since there is nothing to render for it.
func mustParseSelection(name string) dashboard.Selection {
	sel, err := dashboard.ParseSelection(name)
	if err == nil && sel.IsPlaceholder() {
		err = fmt.Errorf("%w: an MEP name is required", dashboard.ErrUnknownSelection)
	}
	if err != nil {
		exitWithError(ExitNotFound, "%v\n\nRun 'euncover list' to see the available names.", err)
	}
	return sel
}
