package dashboard

import (
	"github.com/euncover/euncover/internal/declaration"
	"github.com/euncover/euncover/internal/mep"
	"github.com/euncover/euncover/internal/viz"
)

// Page is the rendered dashboard for one selection. Exactly one of
// Welcome or the four panels is populated.
type Page struct {
	Selection string   `json:"selection"`
	Options   []string `json:"options"`

	Welcome *Welcome `json:"welcome,omitempty"`

	Profile     *ProfilePanel     `json:"profile,omitempty"`
	Declaration *DeclarationPanel `json:"declaration,omitempty"`
	Network     *NetworkPanel     `json:"network,omitempty"`
	Articles    *ArticlesPanel    `json:"articles,omitempty"`
	About       string            `json:"about,omitempty"`
}

// ProfilePanel shows biographical data and profile links.
type ProfilePanel struct {
	Name        string      `json:"name"`
	Country     string      `json:"country,omitempty"`
	Party       string      `json:"party,omitempty"`
	EUGroup     string      `json:"eu_group,omitempty"`
	Committees  string      `json:"committees,omitempty"`
	Delegations string      `json:"delegations,omitempty"`
	Links       []Link      `json:"links"`
	Error       *PanelError `json:"error,omitempty"`
}

// HasDetails reports whether the biography fields were loaded. A row whose
// list columns failed to decode still has them.
func (p *ProfilePanel) HasDetails() bool {
	return p.Error == nil || p.Error.Kind == KindMalformedList
}

// DeclarationPanel shows the rendered declaration of interests.
type DeclarationPanel struct {
	Report *declaration.Report `json:"report,omitempty"`
	Error  *PanelError         `json:"error,omitempty"`
}

// NetworkPanel shows the relationship graph.
type NetworkPanel struct {
	Nodes    int               `json:"nodes"`
	Edges    int               `json:"edges"`
	Dangling int               `json:"dangling,omitempty"`
	Legend   []viz.LegendEntry `json:"legend"`
	Graph    *viz.GraphData    `json:"graph,omitempty"`
	HTML     string            `json:"-"`
	Error    *PanelError       `json:"error,omitempty"`
}

// ArticlesPanel lists news articles mentioning the MEP.
type ArticlesPanel struct {
	Articles []mep.Article `json:"articles"`
	Message  string        `json:"message,omitempty"`
	Error    *PanelError   `json:"error,omitempty"`
}

// Errors returns the failed panels keyed by panel name.
func (p *Page) Errors() map[string]*PanelError {
	errs := make(map[string]*PanelError)
	if p.Profile != nil && p.Profile.Error != nil {
		errs[PanelProfile] = p.Profile.Error
	}
	if p.Declaration != nil && p.Declaration.Error != nil {
		errs[PanelDeclaration] = p.Declaration.Error
	}
	if p.Network != nil && p.Network.Error != nil {
		errs[PanelNetwork] = p.Network.Error
	}
	if p.Articles != nil && p.Articles.Error != nil {
		errs[PanelArticles] = p.Articles.Error
	}
	return errs
}
