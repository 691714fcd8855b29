package main

import (
	"context"
	"os"

	"github.com/euncover/euncover/internal/dashboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "Render the dashboard for one MEP",
	Long: `Render the dashboard for one MEP, or the welcome page without a name.

Failed panels are reported inside the output; the command still succeeds.

Examples:
  euncover show "Maria Walsh"
  euncover show "Seán Kelly" --human`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	catalog, closeCatalog := mustOpenCatalog(cfg)
	defer closeCatalog()

	ctrl := newController(cfg, catalog, newLogger(cfg), nil)

	var name string
	if len(args) == 1 {
		name = args[0]
	}
	page, err := ctrl.Render(context.Background(), name)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		return dashboard.WriteText(os.Stdout, page)
	}
	return outputJSON(page)
}
