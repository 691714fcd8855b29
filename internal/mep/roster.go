package mep

// Placeholder is the selection shown before any MEP is chosen.
const Placeholder = "Start"

// Roster lists the Irish MEPs offered for selection, in display order.
var Roster = []string{
	"Barry Andrews",
	"Lynn Boylan",
	"Nina Carberry",
	"Barry Cowen",
	"Regina Doherty",
	"Luke Ming Flanagan",
	"Kathleen Funchion",
	"Billy Kelleher",
	"Seán Kelly",
	"Michael McNamara",
	"Ciaran Mullooly",
	"Cynthia Ní Mhurchú",
	"Aodhán Ó Ríordáin",
	"Maria Walsh",
}

// SelectionOptions returns the dropdown entries: the placeholder followed by the roster.
func SelectionOptions() []string {
	opts := make([]string, 0, len(Roster)+1)
	opts = append(opts, Placeholder)
	return append(opts, Roster...)
}

// InRoster reports whether name is one of the selectable MEPs.
func InRoster(name string) bool {
	for _, n := range Roster {
		if n == name {
			return true
		}
	}
	return false
}
