// Package mep defines the core domain types for Members of the European Parliament.
package mep

// Biography holds the reference data for one MEP.
type Biography struct {
	FullName     string   `json:"full_name" validate:"required"`
	Country      string   `json:"country"`
	Party        string   `json:"party"`
	EUGroup      string   `json:"eu_group"`
	Committees   []string `json:"committees"`
	Delegations  []string `json:"delegations"`
	WikipediaURL string   `json:"wikipedia_url,omitempty" validate:"omitempty,url"`
}

// Article is a news article mentioning an MEP.
type Article struct {
	FullName string `json:"full_name" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Link     string `json:"link" validate:"required"`
}

// Node types used to colour network entities.
const (
	NodeTypePerson                   = "Person"
	NodeTypePoliticalParty           = "Political Party"
	NodeTypePoliticalGroup           = "Political Group"
	NodeTypeThinkTank                = "Think Tank"
	NodeTypeNGO                      = "NGO"
	NodeTypeNonGovernmental          = "Non-Governmental Organization"
	NodeTypePublicServiceBroadcaster = "Public Service Broadcaster"
	NodeTypeOrganization             = "Organization"
	NodeTypeLobbyist                 = "Lobbyist"
	NodeTypeOther                    = "Other"
)

// Network is the pre-built relationship graph of one MEP.
type Network struct {
	Nodes []NetworkNode `json:"nodes" validate:"dive"`
	Edges []NetworkEdge `json:"edges" validate:"dive"`
}

// NetworkNode is an entity in an MEP's network.
type NetworkNode struct {
	ID   string `json:"id" validate:"required"`
	Type string `json:"type"`
}

// NetworkEdge is a directed relationship between two entities.
type NetworkEdge struct {
	Source   string `json:"source" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Relation string `json:"relation,omitempty"`
}

// HasNode reports whether id is declared in the node list.
func (n *Network) HasNode(id string) bool {
	for _, node := range n.Nodes {
		if node.ID == id {
			return true
		}
	}
	return false
}

// DuplicateNodes returns node IDs declared more than once, in first
// appearance order.
func (n *Network) DuplicateNodes() []string {
	counts := make(map[string]int, len(n.Nodes))
	var out []string
	for _, node := range n.Nodes {
		counts[node.ID]++
		if counts[node.ID] == 2 {
			out = append(out, node.ID)
		}
	}
	return out
}

// DanglingEdge describes an edge whose endpoints are not declared nodes.
type DanglingEdge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation,omitempty"`
	Reason   string `json:"reason"` // "missing_source", "missing_target", or "missing_both"
}

// DanglingEdges returns the edges referencing undeclared nodes, in edge order.
func (n *Network) DanglingEdges() []DanglingEdge {
	ids := make(map[string]bool, len(n.Nodes))
	for _, node := range n.Nodes {
		ids[node.ID] = true
	}

	var out []DanglingEdge
	for _, e := range n.Edges {
		hasSource, hasTarget := ids[e.Source], ids[e.Target]
		if hasSource && hasTarget {
			continue
		}
		reason := "missing_both"
		switch {
		case hasSource:
			reason = "missing_target"
		case hasTarget:
			reason = "missing_source"
		}
		out = append(out, DanglingEdge{
			Source:   e.Source,
			Target:   e.Target,
			Relation: e.Relation,
			Reason:   reason,
		})
	}
	return out
}
