package dataset

import (
	"fmt"

	"github.com/euncover/euncover/internal/mep"
)

// Biography table columns.
const (
	colCountry     = "country"
	colParty       = "party"
	colEUGroup     = "eugroup_full"
	colCommittees  = "committee_full"
	colDelegations = "delegation_full"
	colWikipedia   = "wikipedia_url"
)

// BiographyRow is a decoded biography row.
// Err is set when the row's list-encoded columns could not be decoded;
// the other fields are still populated.
type BiographyRow struct {
	mep.Biography
	Err error
}

// ReadBiographies reads the biography table. Rows failing validation are
// skipped and returned separately.
func ReadBiographies(path string) ([]BiographyRow, []InvalidRow, error) {
	t, err := readTable(path, NameColumn)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]BiographyRow, 0, len(t.rows))
	var invalid []InvalidRow
	for i, rec := range t.rows {
		row := BiographyRow{
			Biography: mep.Biography{
				FullName:     t.get(rec, NameColumn),
				Country:      t.get(rec, colCountry),
				Party:        t.get(rec, colParty),
				EUGroup:      t.get(rec, colEUGroup),
				WikipediaURL: t.get(rec, colWikipedia),
			},
		}
		if err := validateRecord(&row.Biography); err != nil {
			invalid = append(invalid, invalidRow(i, row.FullName, err))
			continue
		}

		committees, cErr := mep.ParseList(t.get(rec, colCommittees))
		delegations, dErr := mep.ParseList(t.get(rec, colDelegations))
		row.Committees = committees
		row.Delegations = delegations
		switch {
		case cErr != nil:
			row.Err = fmt.Errorf("committees: %w", cErr)
		case dErr != nil:
			row.Err = fmt.Errorf("delegations: %w", dErr)
		}

		rows = append(rows, row)
	}
	return rows, invalid, nil
}

// FindBiography returns the first row whose name equals name.
func FindBiography(rows []BiographyRow, name string) (BiographyRow, bool) {
	for _, row := range rows {
		if row.FullName == name {
			return row, true
		}
	}
	return BiographyRow{}, false
}
