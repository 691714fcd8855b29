package main

import (
	"context"
	"fmt"
	"os"

	"github.com/euncover/euncover/internal/browser"
	"github.com/euncover/euncover/internal/viz"
	"github.com/spf13/cobra"
)

var networkOutput string
var networkLayout string
var networkScriptURL string
var networkOpen bool

func init() {
	networkCmd.Flags().StringVarP(&networkOutput, "output", "o", "", "Output file path (default: stdout)")
	networkCmd.Flags().StringVar(&networkLayout, "layout", "", "Layout algorithm: force, circle, or grid (default from config)")
	networkCmd.Flags().StringVar(&networkScriptURL, "script-url", "", "Where the page loads Cytoscape.js from")
	networkCmd.Flags().BoolVar(&networkOpen, "open", false, "Open the written file in a browser (requires --output)")
	rootCmd.AddCommand(networkCmd)
}

var networkCmd = &cobra.Command{
	Use:   "network NAME",
	Short: "Generate an MEP's relationship network page",
	Long: `Generate an interactive HTML page of an MEP's relationship network.

Node colours follow the entity type:
  - skyblue: Person
  - orange: Political Party
  - green: Political Group
  - purple: Think Tank
  - pink: NGO
  - brown: Public Service Broadcaster
  - yellow: Organization
  - teal: Lobbyist
  - grey: Other

The selected MEP is drawn larger. Hover or tap an edge to see the relation.

Examples:
  # Generate HTML to stdout
  euncover network "Maria Walsh" > walsh.html

  # Use circular layout
  euncover network "Maria Walsh" --layout circle -o walsh.html

  # Write and open in the browser
  euncover network "Maria Walsh" -o walsh.html --open`,
	Args: cobra.ExactArgs(1),
	RunE: runNetwork,
}

// NetworkResult is the response for the network command when writing a file.
type NetworkResult struct {
	Output   string `json:"output"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
	Dangling int    `json:"dangling"`
}

func runNetwork(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	catalog, closeCatalog := mustOpenCatalog(cfg)
	defer closeCatalog()

	sel := mustParseSelection(args[0])

	network, err := catalog.Network(context.Background(), sel.Name)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	graph := viz.BuildNetworkGraph(sel.Name, network)

	// Generate HTML (validates options internally)
	opts := htmlOptions(cfg)
	if networkLayout != "" {
		opts.Layout = networkLayout
	}
	if networkScriptURL != "" {
		opts.ScriptURL = networkScriptURL
	}
	html, err := viz.GenerateHTML(graph, opts)
	if err != nil {
		return fmt.Errorf("generating HTML: %w", err)
	}

	// Output
	if networkOutput == "" {
		if networkOpen {
			exitWithError(ExitError, "--open requires --output")
		}
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(networkOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if networkOpen {
		if err := browser.NewOpener(cfg.Browser).OpenFile(networkOutput); err != nil {
			exitWithError(ExitError, "opening browser: %v", err)
		}
	}
	if humanOutput {
		outputHuman("Network of %s written to %s (%d nodes, %d edges", sel.Name, networkOutput, len(graph.Nodes), len(graph.Edges))
		if n := graph.DanglingCount(); n > 0 {
			outputHuman(", %d not drawn", n)
		}
		outputHuman(")\n")
		return nil
	}
	return outputJSON(NetworkResult{
		Output:   networkOutput,
		Nodes:    len(graph.Nodes),
		Edges:    len(graph.Edges),
		Dangling: graph.DanglingCount(),
	})
}
