package declaration

import (
	"reflect"
	"testing"

	"github.com/euncover/euncover/internal/mep"
)

func entry(fields ...string) mep.Entry {
	var e mep.Entry
	for i := 0; i+1 < len(fields); i += 2 {
		e.Fields = append(e.Fields, mep.Field{Key: fields[i], Value: fields[i+1]})
	}
	return e
}

func TestRender_AllEmpty(t *testing.T) {
	r := Render("Maria Walsh", mep.Declaration{})

	if r.Heading != "EU MEP Maria Walsh declared:" {
		t.Errorf("Heading = %q", r.Heading)
	}

	want := []struct {
		key      string
		kind     Kind
		fallback string
	}{
		{"occupation_membership", KindTable, "No occupation membership declared."},
		{"remunerated_activity", KindTable, "No remunerated activities declared."},
		{"membership", KindTable, "No memberships declared."},
		{"holdings", KindTable, "No holdings declared."},
		{"additional_support", KindText, "No additional support declared."},
		{"private_interests", KindText, "No private interests declared."},
		{"additional_information", KindText, "No additional information provided."},
	}
	if len(r.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(r.Sections), len(want))
	}

	seen := make(map[string]bool)
	for i, w := range want {
		s := r.Sections[i]
		if s.Key != w.key || s.Kind != w.kind {
			t.Errorf("section %d = %s/%s, want %s/%s", i, s.Key, s.Kind, w.key, w.kind)
		}
		if s.Fallback != w.fallback {
			t.Errorf("section %s fallback = %q, want %q", s.Key, s.Fallback, w.fallback)
		}
		if s.Declared() || s.Table != nil || s.Text != "" {
			t.Errorf("section %s should only carry its fallback", s.Key)
		}
		if seen[s.Fallback] {
			t.Errorf("fallback %q is not specific to %s", s.Fallback, s.Key)
		}
		seen[s.Fallback] = true
	}
}

func TestRender_Independence(t *testing.T) {
	d := mep.Declaration{
		RemuneratedActivity: mep.Entries{entry("description", "Columnist", "income", "500-1000")},
		PrivateInterests:    "Farm in Co. Mayo",
	}
	r := Render("Maria Walsh", d)

	for _, s := range r.Sections {
		switch s.Key {
		case "remunerated_activity":
			if s.Table == nil || len(s.Table.Rows) != 1 {
				t.Errorf("remunerated_activity table = %+v", s.Table)
			}
		case "private_interests":
			if s.Text != "Farm in Co. Mayo" {
				t.Errorf("private_interests text = %q", s.Text)
			}
		default:
			if s.Declared() {
				t.Errorf("section %s should fall back", s.Key)
			}
		}
	}
}

func TestRender_WhitespaceTextFallsBack(t *testing.T) {
	r := Render("X", mep.Declaration{AdditionalSupport: "  \n "})
	if r.Sections[4].Fallback != "No additional support declared." {
		t.Errorf("whitespace text should fall back, got %+v", r.Sections[4])
	}
}

func TestBuildTable(t *testing.T) {
	tests := []struct {
		name    string
		entries mep.Entries
		want    *Table
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    nil,
		},
		{
			name: "keys in first appearance order",
			entries: mep.Entries{
				entry("organisation", "GAA", "role", "Member"),
				entry("role", "Chair", "period", "2020"),
			},
			want: &Table{
				Columns: []string{"organisation", "role", "period"},
				Rows: [][]string{
					{"GAA", "Member", ""},
					{"", "Chair", "2020"},
				},
			},
		},
		{
			name: "plain text entries",
			entries: mep.Entries{
				{Fields: []mep.Field{{Value: "Shares in Acme"}}},
			},
			want: &Table{
				Columns: []string{EntryColumn},
				Rows:    [][]string{{"Shares in Acme"}},
			},
		},
		{
			name:    "entries without fields",
			entries: mep.Entries{{}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTable(tt.entries)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildTable() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
