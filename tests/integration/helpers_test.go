// Package integration provides end-to-end tests for the euncover CLI.
package integration

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	euncoverBinary     string
	euncoverBinaryOnce sync.Once
	euncoverBinaryErr  error
)

// getBinary builds the euncover binary once and returns its path.
func getBinary(t *testing.T) string {
	t.Helper()
	euncoverBinaryOnce.Do(func() {
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			euncoverBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "euncover-test-*")
		if err != nil {
			euncoverBinaryErr = err
			return
		}
		euncoverBinary = filepath.Join(tmpDir, "euncover")

		cmd := exec.Command("go", "build", "-o", euncoverBinary, "./cmd/euncover")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			euncoverBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if euncoverBinaryErr != nil {
		t.Fatalf("failed to build euncover: %v", euncoverBinaryErr)
	}
	return euncoverBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

const (
	bioCSV = `full_name_title,country,party,eugroup_full,committee_full,delegation_full,wikipedia_url
Maria Walsh,Ireland,Fine Gael,Group of the European People's Party,"['Agriculture', 'Fisheries']",['Delegation for relations with the United States'],https://en.wikipedia.org/wiki/Maria_Walsh_(politician)
Seán Kelly,Ireland,Fine Gael,Group of the European People's Party,['Industry'],[],
`
	declarationsJSON = `{"Maria Walsh": {"declaration": {
  "private_interests": "None",
  "occupation_membership": [{"role": "Board member", "body": "Some Charity"}]
}}}`
	networksJSON = `{"Maria Walsh": {
  "nodes": [{"id": "Maria Walsh", "type": "Person"}, {"id": "Fine Gael", "type": "Political Party"}],
  "edges": [
    {"source": "Maria Walsh", "target": "Fine Gael", "relation": "member of"},
    {"source": "Maria Walsh", "target": "Nowhere", "relation": "visited"}
  ]
}}`
	articlesCSV = `full_name_title,title,link
Maria Walsh,Walsh speaks in Strasbourg,https://example.com/1
`
)

// setupDataDir writes a small fixture set into a fresh working directory
// and returns it. Data files land in ./data, the default data_dir.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"irelandMEPbio.csv":         bioCSV,
		"irelandDeclarations.json":  declarationsJSON,
		"ireland_network_data.json": networksJSON,
		"irelandMEPnews.csv":        articlesCSV,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// writeConfig writes euncover.yml into dir.
func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "euncover.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// runEuncover executes the CLI in dir and returns stdout, stderr and the
// exit code. XDG_CONFIG_HOME points into dir so no user config leaks in.
func runEuncover(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(getBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(filterEnv(os.Environ(), "EUNCOVER_"), "XDG_CONFIG_HOME="+filepath.Join(dir, "config"))

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("running euncover: %v", err)
	}
	return stdout.String(), stderr.String(), code
}

// decode parses JSON command output into v.
func decode(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("failed to parse JSON: %v\nOutput: %s", err, output)
	}
}

// filterEnv drops variables starting with prefix.
func filterEnv(env []string, prefix string) []string {
	var out []string
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			out = append(out, kv)
		}
	}
	return out
}
