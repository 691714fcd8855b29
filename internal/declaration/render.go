// Package declaration renders an MEP's declaration of interests into
// display sections.
package declaration

import (
	"fmt"
	"strings"

	"github.com/euncover/euncover/internal/mep"
)

// Kind distinguishes tabular from free-text sections.
type Kind string

const (
	KindTable Kind = "table"
	KindText  Kind = "text"
)

// EntryColumn is the column used for entries declared as plain text.
const EntryColumn = "Entry"

// Table is a rendered tabular category.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Section is one rendered declaration category.
// Exactly one of Table, Text, or Fallback is set.
type Section struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Kind     Kind   `json:"kind"`
	Table    *Table `json:"table,omitempty"`
	Text     string `json:"text,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

// Declared reports whether the section has content.
func (s Section) Declared() bool {
	return s.Fallback == ""
}

// Report is a fully rendered declaration.
type Report struct {
	Name     string    `json:"name"`
	Heading  string    `json:"heading"`
	Sections []Section `json:"sections"`
}

// category describes how one declaration field is rendered.
type category struct {
	key      string
	title    string
	kind     Kind
	fallback string
	entries  func(*mep.Declaration) mep.Entries
	text     func(*mep.Declaration) mep.Text
}

// categories lists the declaration fields in display order.
var categories = []category{
	{
		key: "occupation_membership", title: "Occupation/membership", kind: KindTable,
		fallback: "No occupation membership declared.",
		entries:  func(d *mep.Declaration) mep.Entries { return d.OccupationMembership },
	},
	{
		key: "remunerated_activity", title: "Remunerated activity", kind: KindTable,
		fallback: "No remunerated activities declared.",
		entries:  func(d *mep.Declaration) mep.Entries { return d.RemuneratedActivity },
	},
	{
		key: "membership", title: "Membership", kind: KindTable,
		fallback: "No memberships declared.",
		entries:  func(d *mep.Declaration) mep.Entries { return d.Membership },
	},
	{
		key: "holdings", title: "Holdings", kind: KindTable,
		fallback: "No holdings declared.",
		entries:  func(d *mep.Declaration) mep.Entries { return d.Holdings },
	},
	{
		key: "additional_support", title: "Additional support", kind: KindText,
		fallback: "No additional support declared.",
		text:     func(d *mep.Declaration) mep.Text { return d.AdditionalSupport },
	},
	{
		key: "private_interests", title: "Private interests", kind: KindText,
		fallback: "No private interests declared.",
		text:     func(d *mep.Declaration) mep.Text { return d.PrivateInterests },
	},
	{
		key: "additional_information", title: "Additional information", kind: KindText,
		fallback: "No additional information provided.",
		text:     func(d *mep.Declaration) mep.Text { return d.AdditionalInformation },
	},
}

// Render turns a declaration into its seven display sections.
func Render(name string, d mep.Declaration) Report {
	sections := make([]Section, 0, len(categories))
	for _, c := range categories {
		s := Section{Key: c.key, Title: c.title, Kind: c.kind}
		switch c.kind {
		case KindTable:
			if t := BuildTable(c.entries(&d)); t != nil {
				s.Table = t
			} else {
				s.Fallback = c.fallback
			}
		case KindText:
			if text := c.text(&d); !text.IsEmpty() {
				s.Text = strings.TrimSpace(string(text))
			} else {
				s.Fallback = c.fallback
			}
		}
		sections = append(sections, s)
	}

	return Report{
		Name:     name,
		Heading:  fmt.Sprintf("EU MEP %s declared:", name),
		Sections: sections,
	}
}

// BuildTable lays entries out as rows. Columns are the union of entry keys
// in first-appearance order. Returns nil when there are no entries.
func BuildTable(entries mep.Entries) *Table {
	if len(entries) == 0 {
		return nil
	}

	var columns []string
	index := make(map[string]int)
	for _, e := range entries {
		for _, f := range e.Fields {
			key := f.Key
			if key == "" {
				key = EntryColumn
			}
			if _, ok := index[key]; !ok {
				index[key] = len(columns)
				columns = append(columns, key)
			}
		}
	}
	if len(columns) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, len(columns))
		for _, f := range e.Fields {
			key := f.Key
			if key == "" {
				key = EntryColumn
			}
			row[index[key]] = f.Value
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}
