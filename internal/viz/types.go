// Package viz builds relationship network graphs for visualization.
package viz

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Selected string `json:"selected"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// Node represents an entity in an MEP's network.
type Node struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`

	// Display
	Color    string `json:"color"`
	Size     int    `json:"size"`
	Selected bool   `json:"selected,omitempty"`
}

// Edge represents a directed relationship between two entities.
type Edge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation,omitempty"`

	// Dangling is set when an endpoint is not a declared node.
	Dangling bool `json:"dangling,omitempty"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// DanglingCount returns the number of edges with undeclared endpoints.
func (g *GraphData) DanglingCount() int {
	n := 0
	for _, e := range g.Edges {
		if e.Dangling {
			n++
		}
	}
	return n
}
