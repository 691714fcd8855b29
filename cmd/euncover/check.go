package main

import (
	"context"
	"errors"
	"os"

	"github.com/euncover/euncover/internal/config"
	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/mep"
	"github.com/euncover/euncover/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify dataset integrity",
	Long: `Verify the dataset fixtures.

Reports files that are missing or malformed, table rows skipped for
failing validation, roster MEPs absent from a dataset, biography rows with unreadable committee or delegation lists,
networks that omit their own MEP or repeat a node, edges pointing at undeclared nodes, and
whether the SQLite index is stale.`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status       string       `json:"status"`
	Biographies  int          `json:"biographies"`
	Declarations int          `json:"declarations"`
	Networks     int          `json:"networks"`
	Articles     int          `json:"articles"`
	Issues       []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type    string `json:"type"`
	Dataset string `json:"dataset,omitempty"`
	MEP     string `json:"mep,omitempty"`
	Path    string `json:"path,omitempty"`
	Node    string `json:"node,omitempty"`
	Line    int    `json:"line,omitempty"`
	Source  string `json:"source,omitempty"`
	Target  string `json:"target,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Issue types
const (
	IssueMissingFile   = "missing_file"
	IssueMalformedFile = "malformed_file"
	IssueMissingRecord = "missing_record"
	IssueMalformedList = "malformed_list"
	IssueMissingSelf   = "missing_self_node"
	IssueDanglingEdge  = "dangling_edge"
	IssueDuplicateNode = "duplicate_node"
	IssueInvalidRow    = "invalid_row"
	IssueStaleIndex    = "stale_index"
)

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	result := checkDatasets(cfg.DatasetPaths())
	result.Issues = append(result.Issues, checkIndex(cfg)...)
	if len(result.Issues) > 0 {
		result.Status = "issues_found"
	}

	if humanOutput {
		printCheckHuman(result)
	} else if err := outputJSON(result); err != nil {
		return err
	}

	if len(result.Issues) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// checkDatasets loads every dataset independently and collects issues.
func checkDatasets(paths dataset.Paths) CheckResult {
	result := CheckResult{Status: "ok", Issues: []CheckIssue{}}
	add := func(issue CheckIssue) { result.Issues = append(result.Issues, issue) }

	addInvalid := func(name, path string, rows []dataset.InvalidRow) {
		for _, row := range rows {
			add(CheckIssue{Type: IssueInvalidRow, Dataset: name, MEP: row.Name, Path: path, Line: row.Line, Reason: row.Reason})
		}
	}

	if bios, invalid, err := dataset.ReadBiographies(paths.Biographies); err != nil {
		add(loadIssue("biographies", err))
	} else {
		result.Biographies = len(bios)
		addInvalid("biographies", paths.Biographies, invalid)
		for _, name := range mep.Roster {
			row, ok := dataset.FindBiography(bios, name)
			if !ok {
				add(CheckIssue{Type: IssueMissingRecord, Dataset: "biographies", MEP: name})
			} else if row.Err != nil {
				add(CheckIssue{Type: IssueMalformedList, Dataset: "biographies", MEP: name, Reason: row.Err.Error()})
			}
		}
	}

	if decls, err := dataset.ReadDeclarations(paths.Declarations); err != nil {
		add(loadIssue("declarations", err))
	} else {
		result.Declarations = len(decls)
		for _, name := range mep.Roster {
			if _, ok := decls[name]; !ok {
				add(CheckIssue{Type: IssueMissingRecord, Dataset: "declarations", MEP: name})
			}
		}
	}

	if networks, err := dataset.ReadNetworks(paths.Networks); err != nil {
		add(loadIssue("networks", err))
	} else {
		result.Networks = len(networks)
		for _, name := range mep.Roster {
			n, ok := networks[name]
			if !ok {
				add(CheckIssue{Type: IssueMissingRecord, Dataset: "networks", MEP: name})
				continue
			}
			if !n.HasNode(name) {
				add(CheckIssue{Type: IssueMissingSelf, Dataset: "networks", MEP: name})
			}
			for _, id := range n.DuplicateNodes() {
				add(CheckIssue{Type: IssueDuplicateNode, Dataset: "networks", MEP: name, Node: id})
			}
			for _, d := range n.DanglingEdges() {
				add(CheckIssue{
					Type:    IssueDanglingEdge,
					Dataset: "networks",
					MEP:     name,
					Source:  d.Source,
					Target:  d.Target,
					Reason:  d.Reason,
				})
			}
		}
	}

	if articles, invalid, err := dataset.ReadArticles(paths.Articles); err != nil {
		add(loadIssue("articles", err))
	} else {
		result.Articles = len(articles)
		addInvalid("articles", paths.Articles, invalid)
	}

	if len(result.Issues) > 0 {
		result.Status = "issues_found"
	}
	return result
}

// checkIndex reports a stale SQLite index. A missing index only matters
// for the sqlite backend.
func checkIndex(cfg *config.Config) []CheckIssue {
	db, err := storage.OpenExisting(cfg.DBPath)
	if err != nil {
		if cfg.Backend == config.BackendSQLite {
			return []CheckIssue{{Type: IssueStaleIndex, Path: cfg.DBPath, Reason: "index not built"}}
		}
		return nil
	}
	defer db.Close()

	stale, err := db.IsStale(context.Background(), cfg.DatasetPaths())
	switch {
	case errors.Is(err, storage.ErrNotBuilt):
		return []CheckIssue{{Type: IssueStaleIndex, Path: cfg.DBPath, Reason: "index not built"}}
	case err != nil:
		return []CheckIssue{{Type: IssueStaleIndex, Path: cfg.DBPath, Reason: err.Error()}}
	case stale:
		return []CheckIssue{{Type: IssueStaleIndex, Path: cfg.DBPath, Reason: "fixtures changed since last rebuild"}}
	}
	return nil
}

func loadIssue(name string, err error) CheckIssue {
	issue := CheckIssue{Type: IssueMalformedFile, Dataset: name, Reason: err.Error()}
	if errors.Is(err, dataset.ErrMissing) {
		issue.Type = IssueMissingFile
	}
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		issue.Path = loadErr.Path
	}
	return issue
}

func printCheckHuman(result CheckResult) {
	outputHuman("Loaded %d biographies, %d declarations, %d networks, %d articles\n",
		result.Biographies, result.Declarations, result.Networks, result.Articles)
	if len(result.Issues) == 0 {
		outputHuman("No issues found.\n")
		return
	}

	outputHuman("\n%d issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		switch issue.Type {
		case IssueMissingFile, IssueMalformedFile:
			outputHuman("  %s: %s (%s)\n", issue.Type, issue.Dataset, issue.Reason)
		case IssueInvalidRow:
			outputHuman("  %s: %s line %d (%s)\n", issue.Type, issue.Dataset, issue.Line, issue.Reason)
		case IssueDuplicateNode:
			outputHuman("  %s: %s: %s\n", issue.Type, issue.MEP, issue.Node)
		case IssueDanglingEdge:
			outputHuman("  %s: %s: %s -> %s (%s)\n", issue.Type, issue.MEP, issue.Source, issue.Target, issue.Reason)
		case IssueStaleIndex:
			outputHuman("  %s: %s (%s)\n", issue.Type, issue.Path, issue.Reason)
		default:
			outputHuman("  %s: %s in %s", issue.Type, issue.MEP, issue.Dataset)
			if issue.Reason != "" {
				outputHuman(" (%s)", issue.Reason)
			}
			outputHuman("\n")
		}
	}
}
