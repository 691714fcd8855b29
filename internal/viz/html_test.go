package viz

import (
	"strings"
	"testing"

	"github.com/euncover/euncover/internal/mep"
)

func TestGenerateHTML(t *testing.T) {
	g := BuildNetworkGraph("Maria Walsh", walshNetwork())

	html, err := GenerateHTML(g, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}

	for _, want := range []string{
		"<title>Interest Map - Maria Walsh</title>",
		DefaultScriptURL,
		`const layout = "cose"`,
		"Fine Gael",
		"height: 750px",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateHTML_Options(t *testing.T) {
	g := BuildNetworkGraph("Maria Walsh", walshNetwork())

	html, err := GenerateHTML(g, HTMLOptions{Layout: "circle", ScriptURL: "/assets/cytoscape.min.js"})
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, `const layout = "circle"`) {
		t.Error("circle layout not applied")
	}
	if !strings.Contains(html, `src="/assets/cytoscape.min.js"`) {
		t.Error("custom script URL not applied")
	}
}

func TestGenerateHTML_Errors(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil graph")
	}

	g := BuildNetworkGraph("Maria Walsh", walshNetwork())
	if _, err := GenerateHTML(g, HTMLOptions{Layout: "spiral"}); err == nil {
		t.Error("expected error for invalid layout")
	}
}

func TestGenerateHTML_Empty(t *testing.T) {
	g := BuildNetworkGraph("Nina Carberry", mep.Network{})

	html, err := GenerateHTML(g, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "No network data") || !strings.Contains(html, "Nina Carberry") {
		t.Error("empty state not rendered")
	}
	if strings.Contains(html, "cytoscape(") {
		t.Error("empty state should not initialise Cytoscape")
	}
}

func TestGenerateHTML_EscapesScriptBreakout(t *testing.T) {
	network := mep.Network{
		Nodes: []mep.NetworkNode{{ID: "</script><script>alert(1)</script>", Type: "Person"}},
	}
	html, err := GenerateHTML(BuildNetworkGraph("x", network), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if strings.Contains(html, "<script>alert(1)") {
		t.Error("node label was not escaped")
	}
}
