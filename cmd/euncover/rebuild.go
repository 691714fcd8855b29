package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite index from the fixtures",
	Long: `Rebuild the SQLite catalog index from the CSV/JSON fixtures.

The index backs the sqlite backend (backend: sqlite in euncover.yml).
Run this after the fixtures change; 'euncover check' reports a stale index.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status      string `json:"status"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
	Skipped     int    `json:"skipped"`
	storage.RebuildCounts
}

func runRebuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	log := newLogger(cfg)
	paths := cfg.DatasetPaths()

	snap, err := dataset.Load(paths)
	if err != nil {
		exitWithError(exitCodeFor(err), "loading fixtures: %v", err)
	}
	fingerprint, err := storage.Fingerprint(paths)
	if err != nil {
		exitWithError(ExitDataError, "fingerprinting fixtures: %v", err)
	}

	// Ensure cache directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		exitWithError(ExitError, "creating index directory: %v", err)
	}

	db, err := storage.OpenDB(cfg.DBPath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	counts, err := db.Rebuild(context.Background(), snap, fingerprint)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding index: %v", err)
	}
	log.Debug("rebuilt index", "path", cfg.DBPath, "fingerprint", fingerprint)

	skipped := 0
	for name, rows := range snap.Invalid {
		for _, row := range rows {
			log.Warn("skipped invalid row", "dataset", name, "line", row.Line, "reason", row.Reason)
		}
		skipped += len(rows)
	}

	if humanOutput {
		outputHuman("Rebuilt %s\n", cfg.DBPath)
		outputHuman("  Biographies:  %d\n", counts.Biographies)
		outputHuman("  Declarations: %d\n", counts.Declarations)
		outputHuman("  Networks:     %d\n", counts.Networks)
		outputHuman("  Articles:     %d\n", counts.Articles)
		if skipped > 0 {
			outputHuman("  Skipped rows: %d (see 'euncover check')\n", skipped)
		}
		return nil
	}
	return outputJSON(RebuildResult{
		Status:        "rebuilt",
		Path:          cfg.DBPath,
		Fingerprint:   fingerprint,
		Skipped:       skipped,
		RebuildCounts: counts,
	})
}
