package viz

import (
	"github.com/euncover/euncover/internal/mep"
)

// Node sizes. The selected MEP is drawn larger than every other entity.
const (
	NodeSize         = 30
	SelectedNodeSize = 50
)

// DefaultColor is used for Other and for any type without a mapping.
const DefaultColor = "grey"

// LegendEntry pairs a node type with its display colour.
type LegendEntry struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// Legend lists the node types in display order.
var Legend = []LegendEntry{
	{mep.NodeTypePerson, "skyblue"},
	{mep.NodeTypePoliticalParty, "orange"},
	{mep.NodeTypePoliticalGroup, "green"},
	{mep.NodeTypeThinkTank, "purple"},
	{mep.NodeTypeNonGovernmental, "pink"},
	{mep.NodeTypePublicServiceBroadcaster, "brown"},
	{mep.NodeTypeOrganization, "yellow"},
	{mep.NodeTypeLobbyist, "teal"},
	{mep.NodeTypeOther, DefaultColor},
}

// typeColors maps node types to colours, including the short NGO spelling.
var typeColors = func() map[string]string {
	m := make(map[string]string, len(Legend)+1)
	for _, l := range Legend {
		m[l.Type] = l.Color
	}
	m[mep.NodeTypeNGO] = m[mep.NodeTypeNonGovernmental]
	return m
}()

// ColorFor returns the display colour for a node type.
func ColorFor(nodeType string) string {
	if c, ok := typeColors[nodeType]; ok {
		return c
	}
	return DefaultColor
}

// BuildNetworkGraph constructs the visual graph for the selected MEP from
// their pre-built network. Node and edge counts match the input; edges
// referencing undeclared nodes are kept and marked Dangling.
func BuildNetworkGraph(selected string, network mep.Network) *GraphData {
	nodeIDs := make(map[string]bool, len(network.Nodes))
	nodes := make([]Node, 0, len(network.Nodes))
	for _, n := range network.Nodes {
		nodeIDs[n.ID] = true
		nodes = append(nodes, newNode(n, selected))
	}

	edges := make([]Edge, 0, len(network.Edges))
	for _, e := range network.Edges {
		edges = append(edges, Edge{
			Source:   e.Source,
			Target:   e.Target,
			Relation: e.Relation,
			Dangling: !nodeIDs[e.Source] || !nodeIDs[e.Target],
		})
	}

	return &GraphData{
		Selected: selected,
		Nodes:    nodes,
		Edges:    edges,
	}
}

// newNode creates a visualization node, emphasising the selected MEP.
func newNode(n mep.NetworkNode, selected string) Node {
	node := Node{
		ID:    n.ID,
		Type:  n.Type,
		Label: n.ID,
		Color: ColorFor(n.Type),
		Size:  NodeSize,
	}
	if n.ID == selected {
		node.Size = SelectedNodeSize
		node.Selected = true
	}
	return node
}
