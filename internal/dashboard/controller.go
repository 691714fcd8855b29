package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/declaration"
	"github.com/euncover/euncover/internal/logger"
	"github.com/euncover/euncover/internal/mep"
	"github.com/euncover/euncover/internal/viz"
	gocache "github.com/patrickmn/go-cache"
)

// Options configures a Controller.
type Options struct {
	HTML viz.HTMLOptions

	// CacheTTL bounds how long generated network pages are reused.
	// Zero disables the memo.
	CacheTTL time.Duration

	Logger *slog.Logger

	// OnPanelError is called once per failed panel.
	OnPanelError func(panel, kind string)
}

// Controller renders the dashboard for a selection. It holds no per-selection
// state; every render is a function of the selection and the catalog.
type Controller struct {
	catalog      dataset.Catalog
	html         viz.HTMLOptions
	memo         *gocache.Cache
	log          *slog.Logger
	onPanelError func(panel, kind string)
}

// networkView is a memoised network render.
type networkView struct {
	graph *viz.GraphData
	html  string
}

// New creates a controller over catalog.
func New(catalog dataset.Catalog, opts Options) *Controller {
	c := &Controller{
		catalog:      catalog,
		html:         opts.HTML,
		log:          opts.Logger,
		onPanelError: opts.OnPanelError,
	}
	if c.html.Layout == "" {
		c.html.Layout = viz.DefaultOptions().Layout
	}
	if c.log == nil {
		c.log = logger.Discard()
	}
	if opts.CacheTTL > 0 {
		c.memo = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	return c
}

// Render parses raw and renders the matching page.
func (c *Controller) Render(ctx context.Context, raw string) (*Page, error) {
	sel, err := ParseSelection(raw)
	if err != nil {
		return nil, err
	}
	return c.RenderSelection(ctx, sel), nil
}

// RenderSelection renders sel. The placeholder yields only the welcome
// content and performs no catalog lookups. Panel failures are reported
// inside the page and never abort the render.
func (c *Controller) RenderSelection(ctx context.Context, sel Selection) *Page {
	page := &Page{
		Selection: sel.String(),
		Options:   mep.SelectionOptions(),
	}
	if sel.IsPlaceholder() {
		page.Welcome = WelcomeContent()
		return page
	}

	name := sel.Name
	page.Profile = c.profile(ctx, name)
	page.Declaration = c.declaration(ctx, name)
	page.Network = c.network(ctx, name)
	page.Articles = c.articles(ctx, name)
	page.About = AboutText

	c.log.Debug("rendered page", "mep", name, "failed_panels", len(page.Errors()))
	return page
}

// NetworkHTML returns the standalone graph page for sel.
func (c *Controller) NetworkHTML(ctx context.Context, sel Selection) (string, error) {
	if sel.IsPlaceholder() {
		return "", fmt.Errorf("%w: no MEP selected", ErrUnknownSelection)
	}
	view, err := c.networkView(ctx, sel.Name)
	if err != nil {
		return "", err
	}
	return view.html, nil
}

func (c *Controller) profile(ctx context.Context, name string) *ProfilePanel {
	panel := &ProfilePanel{Name: name}
	bio, err := c.catalog.Biography(ctx, name)
	if err != nil {
		panel.Error = c.fail(PanelProfile, name, err)
	}
	// A malformed list still carries the rest of the row.
	if panel.HasDetails() {
		panel.Country = bio.Country
		panel.Party = bio.Party
		panel.EUGroup = bio.EUGroup
		panel.Committees = mep.FormatList(bio.Committees)
		panel.Delegations = mep.FormatList(bio.Delegations)
	}
	panel.Links = profileLinks(bio.WikipediaURL)
	return panel
}

func (c *Controller) declaration(ctx context.Context, name string) *DeclarationPanel {
	d, err := c.catalog.Declaration(ctx, name)
	if err != nil {
		return &DeclarationPanel{Error: c.fail(PanelDeclaration, name, err)}
	}
	report := declaration.Render(name, d)
	return &DeclarationPanel{Report: &report}
}

func (c *Controller) network(ctx context.Context, name string) *NetworkPanel {
	panel := &NetworkPanel{Legend: viz.Legend}
	view, err := c.networkView(ctx, name)
	if err != nil {
		panel.Error = c.fail(PanelNetwork, name, err)
		return panel
	}
	panel.Graph = view.graph
	panel.Nodes = len(view.graph.Nodes)
	panel.Edges = len(view.graph.Edges)
	panel.Dangling = view.graph.DanglingCount()
	panel.HTML = view.html
	return panel
}

// networkView builds or reuses the graph and its HTML. Only successful
// renders are memoised, so a failed lookup is retried on the next selection.
func (c *Controller) networkView(ctx context.Context, name string) (*networkView, error) {
	if c.memo != nil {
		if v, ok := c.memo.Get(name); ok {
			return v.(*networkView), nil
		}
	}

	network, err := c.catalog.Network(ctx, name)
	if err != nil {
		return nil, err
	}
	graph := viz.BuildNetworkGraph(name, network)
	if n := graph.DanglingCount(); n > 0 {
		c.log.Warn("skipping dangling edges", "mep", name, "count", n)
	}
	html, err := viz.GenerateHTML(graph, c.html)
	if err != nil {
		return nil, fmt.Errorf("generating network page: %w", err)
	}

	view := &networkView{graph: graph, html: html}
	if c.memo != nil {
		c.memo.SetDefault(name, view)
	}
	return view, nil
}

func (c *Controller) articles(ctx context.Context, name string) *ArticlesPanel {
	articles, err := c.catalog.Articles(ctx, name)
	if err != nil {
		return &ArticlesPanel{Articles: []mep.Article{}, Error: c.fail(PanelArticles, name, err)}
	}
	panel := &ArticlesPanel{Articles: articles}
	if len(articles) == 0 {
		panel.Articles = []mep.Article{}
		panel.Message = NoArticlesMessage
	}
	return panel
}

// fail logs a panel failure and converts it for display.
func (c *Controller) fail(panel, name string, err error) *PanelError {
	pe := panelError(panel, name, err)
	c.log.Warn("panel failed", "panel", panel, "mep", name, "kind", pe.Kind, "error", err)
	if c.onPanelError != nil {
		c.onPanelError(panel, pe.Kind)
	}
	return pe
}
