package dataset

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/euncover/euncover/internal/mep"
)

// ReadDeclarations reads the declarations document, keyed by MEP name.
func ReadDeclarations(path string) (map[string]mep.Declaration, error) {
	var records map[string]mep.DeclarationRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	out := make(map[string]mep.Declaration, len(records))
	for name, rec := range records {
		out[name] = rec.Declaration
	}
	return out, nil
}

// ReadNetworks reads the network document, keyed by MEP name.
func ReadNetworks(path string) (map[string]mep.Network, error) {
	var networks map[string]mep.Network
	if err := readJSON(path, &networks); err != nil {
		return nil, err
	}

	for _, name := range SortedKeys(networks) {
		n := networks[name]
		if err := validateRecord(&n); err != nil {
			return nil, malformed(path, "network %q: %v", name, err)
		}
	}
	return networks, nil
}

// readJSON decodes a whole JSON file into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return openError(path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return malformed(path, "invalid JSON: %v", err)
	}
	return nil
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
