package graph_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/pkg/graph"
)

type gState int

type gEvent int

const (
	sClosed gState = iota
	sOpen
)

const (
	eOpen gEvent = iota
	eClose
)

type gExt struct{}

type gQueued = machina.QueuedEvent[gEvent, struct{}]

func buildDoor(t *testing.T) machina.Snapshot[gState, gEvent] {
	t.Helper()
	m := machina.New[gState, gEvent, gExt, struct{}](sClosed, gExt{}, "door")
	handler := func(_ *gExt, _ gEvent, _ *struct{}) ([]gQueued, error) { return nil, nil }
	hook := func(_ *gExt) ([]gQueued, error) { return nil, nil }

	m.AddTransition(sClosed, eOpen, sOpen, handler, "OpenUp")
	m.AddTransition(sOpen, eClose, sClosed, handler, "ShutDown")
	m.OnEnter(sOpen, hook, "CountOpens")
	m.OnExit(sOpen, hook, "CountCloses")
	return m.Snapshot()
}

func doorLabels() graph.Labels[gState, gEvent] {
	return graph.Labels[gState, gEvent]{
		States: map[gState]string{sClosed: "Closed", sOpen: "Open"},
		Events: map[gEvent]string{eOpen: "Open", eClose: "Close"},
	}
}

func TestDescribe(t *testing.T) {
	d := graph.Describe(buildDoor(t), doorLabels())

	assert.Equal(t, "door", d.Name)
	assert.Equal(t, "Closed", d.Initial)
	assert.Equal(t, "Closed", d.Current)

	// Two states plus one shadow node per hook.
	require.Len(t, d.Nodes, 4)
	var initial, shadows int
	for _, n := range d.Nodes {
		if n.Initial {
			initial++
			assert.Equal(t, "Closed", n.Label)
		}
		if n.Shadow {
			shadows++
			assert.Contains(t, []string{"Enter", "Exit"}, n.Label)
		}
	}
	assert.Equal(t, 1, initial)
	assert.Equal(t, 2, shadows)

	// Two transitions plus two hook edges.
	require.Len(t, d.Edges, 4)
	labels := make([]string, 0, len(d.Edges))
	for _, e := range d.Edges {
		labels = append(labels, e.Label)
	}
	assert.Contains(t, labels, "OpenUp\n|Open|")
	assert.Contains(t, labels, "ShutDown\n|Close|")
	assert.Contains(t, labels, "CountOpens")
	assert.Contains(t, labels, "CountCloses")
}

func TestDescribe_UnknownLabelsRenderAsQuestionMark(t *testing.T) {
	snap := buildDoor(t)
	d := graph.Describe(snap, graph.Labels[gState, gEvent]{})

	assert.Equal(t, "?", d.Initial)
	for _, e := range d.Edges {
		if !e.Dashed {
			assert.Contains(t, e.Label, "|?|")
		}
	}
}

func TestDOT(t *testing.T) {
	d := graph.Describe(buildDoor(t), doorLabels())

	var sb strings.Builder
	require.NoError(t, graph.DOT(d, &sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph G"))
	assert.Contains(t, out, "shape=diamond")
	assert.Contains(t, out, "shape=plain, style=dashed")
	assert.Contains(t, out, `label="OpenUp\n|Open|"`)
	assert.Contains(t, out, `label="CountOpens", style=dashed`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteDOT(t *testing.T) {
	d := graph.Describe(buildDoor(t), doorLabels())

	path := filepath.Join(t.TempDir(), "door.dot")
	require.NoError(t, graph.WriteDOT(d, path))

	err := graph.WriteDOT(d, filepath.Join(t.TempDir(), "missing", "door.dot"))
	assert.Error(t, err)
}

func TestMermaid(t *testing.T) {
	d := graph.Describe(buildDoor(t), doorLabels())
	out := graph.Mermaid(d)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `(("Closed"))`)
	assert.Contains(t, out, `{{"Enter"}}`)
	assert.Contains(t, out, `-- "OpenUp |Open|" -->`)
	assert.Contains(t, out, `-. "CountOpens" .->`)
}
