package pages

import (
	"errors"
	"fmt"

	"studydesk/internal/domain"
)

var ErrUnknownPage = errors.New("unknown page")

// Inputs are the named string fields collected from the previous page.
// A missing name reads as the empty string.
type Inputs map[string]string

func (in Inputs) Get(name string) string {
	if in == nil {
		return ""
	}
	return in[name]
}

type HandlerFunc func(st *domain.State, in Inputs) domain.Page

// Route binds a page id to its handler and the input names it consumes.
// Renders is set on action pages that mutate something and then delegate
// to another page's rendering.
type Route struct {
	ID      domain.PageID
	Params  []string
	Renders domain.PageID
	Handler HandlerFunc
}

// Edge is one button: pressing Label on From invokes To.
type Edge struct {
	From  domain.PageID `json:"from" yaml:"from"`
	To    domain.PageID `json:"to" yaml:"to"`
	Label string        `json:"label" yaml:"label"`
}

// Node describes one page of the graph.
type Node struct {
	ID      domain.PageID `json:"id" yaml:"id"`
	Params  []string      `json:"params,omitempty" yaml:"params,omitempty"`
	Renders domain.PageID `json:"renders,omitempty" yaml:"renders,omitempty"`
}

// Graph is the navigation table of the app.
type Graph struct {
	Entry  domain.PageID
	routes map[domain.PageID]Route
	order  []domain.PageID
}

func newGraph(entry domain.PageID, routes ...Route) *Graph {
	g := &Graph{Entry: entry, routes: make(map[domain.PageID]Route, len(routes))}
	for _, r := range routes {
		g.routes[r.ID] = r
		g.order = append(g.order, r.ID)
	}
	return g
}

func (g *Graph) Route(id domain.PageID) (Route, error) {
	r, ok := g.routes[id]
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	return r, nil
}

// Dispatch invokes the handler bound to id with st and the collected inputs.
func (g *Graph) Dispatch(id domain.PageID, st *domain.State, in Inputs) (domain.Page, error) {
	r, err := g.Route(id)
	if err != nil {
		return domain.Page{}, err
	}
	return r.Handler(st, in), nil
}

// Nodes lists pages in registration order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		r := g.routes[id]
		out = append(out, Node{ID: id, Params: r.Params, Renders: r.Renders})
	}
	return out
}

// Edges collects the buttons of every page in registration order. Action
// pages contribute the buttons of the page they delegate to, so no handler
// with side effects outside State runs here.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, id := range g.order {
		r := g.routes[id]
		if r.Renders != "" {
			r = g.routes[r.Renders]
		}
		st := domain.NewState()
		for _, b := range r.Handler(&st, nil).Buttons() {
			out = append(out, Edge{From: id, To: b.Target, Label: b.Text})
		}
	}
	return out
}
