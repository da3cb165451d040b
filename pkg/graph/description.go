// Package graph renders machine snapshots as directed-graph diagrams (DOT
// and Mermaid). It is a pure diagnostic consumer: it reads a detached
// machina.Snapshot plus caller-supplied label maps and never touches engine
// state.
package graph

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/machina"
)

// Labels maps opaque state and event values to human-readable display names.
// Values missing from the maps render as "?".
type Labels[S comparable, E comparable] struct {
	States map[S]string
	Events map[E]string
}

// State returns the display name for s.
func (l Labels[S, E]) State(s S) string {
	if name, ok := l.States[s]; ok {
		return name
	}
	return "?"
}

// Event returns the display name for e.
func (l Labels[S, E]) Event(e E) string {
	if name, ok := l.Events[e]; ok {
		return name
	}
	return "?"
}

// Node is one rendered graph node: either a real state or a dashed "shadow"
// node standing in for an entry/exit hook attachment point.
type Node struct {
	ID      string
	Label   string
	Initial bool
	Shadow  bool
	// Shape and Style override the renderer defaults when non-empty
	// (blueprint metadata uses this).
	Shape string
	Style string
}

// Edge is one rendered graph edge: a transition or a hook attachment.
type Edge struct {
	From   string
	To     string
	Label  string
	Dashed bool
}

// Description is the renderer-facing, stringly-labelled view of a machine.
// Both live machines (via Describe) and handler-free blueprints produce one.
type Description struct {
	ID      string
	Name    string
	Initial string
	Current string
	Pending int
	Nodes   []Node
	Edges   []Edge
}

// NewID mints a render-unique identifier with the given prefix.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Describe turns a machine snapshot into a Description: one node per state
// (the initial state marked distinctly), one shadow node per state that has
// an entry or exit hook, one edge per transition labelled with handler name
// and event label, and one edge per hook labelled with the hook name.
// Output ordering is deterministic given the same snapshot and labels.
func Describe[S comparable, E comparable](snap machina.Snapshot[S, E], labels Labels[S, E]) Description {
	d := Description{
		ID:      NewID("G"),
		Name:    snap.Name,
		Initial: labels.State(snap.Initial),
		Current: labels.State(snap.Current),
		Pending: snap.Pending,
	}

	nodeIDs := make(map[S]string)
	ensure := func(s S) string {
		if id, ok := nodeIDs[s]; ok {
			return id
		}
		id := NewID("N")
		nodeIDs[s] = id
		d.Nodes = append(d.Nodes, Node{ID: id, Label: labels.State(s), Initial: s == snap.Initial})
		return id
	}
	ensure(snap.Initial)
	ensure(snap.Current)

	transitions := append([]machina.TransitionInfo[S, E](nil), snap.Transitions...)
	sort.Slice(transitions, func(i, j int) bool {
		a, b := transitions[i], transitions[j]
		if la, lb := labels.State(a.From), labels.State(b.From); la != lb {
			return la < lb
		}
		if la, lb := labels.Event(a.Event), labels.Event(b.Event); la != lb {
			return la < lb
		}
		return labels.State(a.To) < labels.State(b.To)
	})
	for _, tr := range transitions {
		from := ensure(tr.From)
		to := ensure(tr.To)
		d.Edges = append(d.Edges, Edge{
			From:  from,
			To:    to,
			Label: tr.Name + "\n|" + labels.Event(tr.Event) + "|",
		})
	}

	hooks := append([]machina.HookInfo[S](nil), snap.Hooks...)
	sort.Slice(hooks, func(i, j int) bool {
		a, b := hooks[i], hooks[j]
		if la, lb := labels.State(a.State), labels.State(b.State); la != lb {
			return la < lb
		}
		return a.Direction < b.Direction
	})
	for _, h := range hooks {
		stateID := ensure(h.State)
		shadow := Node{
			ID:     NewID("N"),
			Shadow: true,
		}
		edge := Edge{Label: h.Name, Dashed: true}
		switch h.Direction {
		case machina.Enter:
			shadow.Label = "Enter"
			edge.From, edge.To = shadow.ID, stateID
		case machina.Exit:
			shadow.Label = "Exit"
			edge.From, edge.To = stateID, shadow.ID
		}
		d.Nodes = append(d.Nodes, shadow)
		d.Edges = append(d.Edges, edge)
	}

	return d
}
