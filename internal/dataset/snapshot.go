package dataset

import (
	"github.com/euncover/euncover/internal/mep"
)

// Snapshot holds every dataset fully loaded into memory.
type Snapshot struct {
	Biographies  []BiographyRow
	Declarations map[string]mep.Declaration
	Networks     map[string]mep.Network
	Articles     []mep.Article

	// Skipped rows of the CSV tables, keyed by dataset name.
	Invalid map[string][]InvalidRow
}

// Load reads all four datasets, stopping at the first failure.
func Load(paths Paths) (*Snapshot, error) {
	bios, invalidBios, err := ReadBiographies(paths.Biographies)
	if err != nil {
		return nil, err
	}
	decls, err := ReadDeclarations(paths.Declarations)
	if err != nil {
		return nil, err
	}
	networks, err := ReadNetworks(paths.Networks)
	if err != nil {
		return nil, err
	}
	articles, invalidArticles, err := ReadArticles(paths.Articles)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Biographies:  bios,
		Declarations: decls,
		Networks:     networks,
		Articles:     articles,
		Invalid: map[string][]InvalidRow{
			"biographies": invalidBios,
			"articles":    invalidArticles,
		},
	}, nil
}
