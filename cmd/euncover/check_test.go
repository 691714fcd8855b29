package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/euncover/euncover/internal/dashboard"
	"github.com/euncover/euncover/internal/dataset"
)

func writeCheckFixtures(t *testing.T, networks string) dataset.Paths {
	t.Helper()
	dir := t.TempDir()
	paths := dataset.Paths{
		Biographies:  filepath.Join(dir, "bio.csv"),
		Declarations: filepath.Join(dir, "declarations.json"),
		Networks:     filepath.Join(dir, "network.json"),
		Articles:     filepath.Join(dir, "news.csv"),
	}
	files := map[string]string{
		paths.Biographies: `full_name_title,country,party,eugroup_full,committee_full,delegation_full,wikipedia_url
Maria Walsh,Ireland,Fine Gael,EPP,"['Agriculture'",[],
`,
		paths.Declarations: `{"Maria Walsh": {"declaration": {}}}`,
		paths.Networks:     networks,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Articles file deliberately absent.
	return paths
}

func countIssues(issues []CheckIssue, typ string) int {
	n := 0
	for _, i := range issues {
		if i.Type == typ {
			n++
		}
	}
	return n
}

func TestCheckDatasets(t *testing.T) {
	paths := writeCheckFixtures(t, `{"Maria Walsh": {
  "nodes": [{"id": "Fine Gael", "type": "Political Party"}, {"id": "Fine Gael", "type": "Political Party"}],
  "edges": [{"source": "Maria Walsh", "target": "Fine Gael", "relation": "member of"}]
}}`)

	result := checkDatasets(paths)
	if result.Status != "issues_found" {
		t.Errorf("Status = %q", result.Status)
	}
	if result.Biographies != 1 || result.Declarations != 1 || result.Networks != 1 {
		t.Errorf("unexpected counts %+v", result)
	}

	tests := []struct {
		typ  string
		want int
	}{
		{IssueMissingFile, 1},
		{IssueMalformedList, 1},
		{IssueMissingSelf, 1},
		{IssueDanglingEdge, 1},
		{IssueDuplicateNode, 1},
		// 13 roster names missing from each of three datasets
		{IssueMissingRecord, 39},
	}
	for _, tt := range tests {
		if got := countIssues(result.Issues, tt.typ); got != tt.want {
			t.Errorf("%s issues = %d, want %d", tt.typ, got, tt.want)
		}
	}
	for _, i := range result.Issues {
		if i.Type == IssueDuplicateNode && (i.MEP != "Maria Walsh" || i.Node != "Fine Gael") {
			t.Errorf("duplicate node issue = %+v", i)
		}
	}
}

func TestCheckDatasets_MalformedNetwork(t *testing.T) {
	paths := writeCheckFixtures(t, `{"Maria Walsh": `)

	result := checkDatasets(paths)
	if got := countIssues(result.Issues, IssueMalformedFile); got != 1 {
		t.Errorf("malformed issues = %d, want 1", got)
	}
	for _, i := range result.Issues {
		if i.Type == IssueMalformedFile && i.Path != paths.Networks {
			t.Errorf("issue path = %q, want %q", i.Path, paths.Networks)
		}
	}
}

func TestCheckDatasets_InvalidRows(t *testing.T) {
	paths := writeCheckFixtures(t, `{}`)
	articles := "full_name_title,title,link\nMaria Walsh,First,https://example.com/1\nSeán Kelly,No link,\n"
	if err := os.WriteFile(paths.Articles, []byte(articles), 0644); err != nil {
		t.Fatal(err)
	}

	result := checkDatasets(paths)
	if result.Articles != 1 {
		t.Errorf("Articles = %d, want 1", result.Articles)
	}
	if got := countIssues(result.Issues, IssueInvalidRow); got != 1 {
		t.Fatalf("invalid_row issues = %d, want 1", got)
	}
	for _, i := range result.Issues {
		if i.Type == IssueInvalidRow && (i.Dataset != "articles" || i.MEP != "Seán Kelly" || i.Line != 3) {
			t.Errorf("invalid row issue = %+v", i)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown selection", dashboard.ErrUnknownSelection, ExitNotFound},
		{"not found", dataset.ErrNotFound, ExitNotFound},
		{"missing", &dataset.LoadError{Kind: dataset.ErrMissing, Err: os.ErrNotExist}, ExitDataError},
		{"malformed", &dataset.LoadError{Kind: dataset.ErrMalformed, Err: os.ErrInvalid}, ExitDataError},
		{"other", os.ErrPermission, ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor = %d, want %d", got, tt.want)
			}
		})
	}
}
