package pages

import (
	"errors"
	"testing"

	"studydesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchUnknownPage(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	_, err := app.Graph().Dispatch("nope", &st, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPage))
}

func TestDispatchPassesInputs(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page, err := app.Graph().Dispatch(domain.PageSelection, &st, Inputs{"username": "Lin"})

	require.NoError(t, err)
	assert.Equal(t, domain.PageSelection, page.ID)
	assert.Equal(t, "Lin", st.Username)
}

func TestEveryButtonTargetsARoute(t *testing.T) {
	app, _ := newTestApp()
	g := app.Graph()

	edges := g.Edges()
	require.NotEmpty(t, edges)
	for _, e := range edges {
		_, err := g.Route(e.To)
		assert.NoError(t, err, "edge %s -> %s", e.From, e.To)
	}
}

func TestEdgesHaveNoSideEffects(t *testing.T) {
	app, tasks := newTestApp()

	app.Graph().Edges()

	assert.Equal(t, 0, tasks.Count())
}

func TestEveryPageReachableFromEntry(t *testing.T) {
	app, _ := newTestApp()
	g := app.Graph()

	adj := map[domain.PageID][]domain.PageID{}
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
	}
	seen := map[domain.PageID]bool{g.Entry: true}
	queue := []domain.PageID{g.Entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adj[id] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, n := range g.Nodes() {
		assert.True(t, seen[n.ID], "page %s unreachable", n.ID)
	}
}

func TestSelectionEdges(t *testing.T) {
	app, _ := newTestApp()

	var got []Edge
	for _, e := range app.Graph().Edges() {
		if e.From == domain.PageSelection {
			got = append(got, e)
		}
	}

	assert.Equal(t, []Edge{
		{From: domain.PageSelection, To: domain.PageNoteArea, Label: "Notes Area"},
		{From: domain.PageSelection, To: domain.PageTimeSelection, Label: "Timer"},
		{From: domain.PageSelection, To: domain.PageAddTodoList, Label: "To-Do List"},
		{From: domain.PageSelection, To: domain.PageIndex, Label: "Back"},
	}, got)
}
