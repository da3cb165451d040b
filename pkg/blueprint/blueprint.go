// Package blueprint loads handler-free machine definitions from YAML. A
// blueprint carries the structural half of a machine (states, events,
// transitions, hooks, display metadata) so tooling can validate and render a
// design before any handler code exists.
package blueprint

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/machina/pkg/graph"
)

// Blueprint is the top-level YAML document.
type Blueprint struct {
	Name        string       `yaml:"name"`
	Initial     string       `yaml:"initial"`
	States      []State      `yaml:"states"`
	Events      []Event      `yaml:"events"`
	Transitions []Transition `yaml:"transitions"`
	Hooks       []Hook       `yaml:"hooks"`
}

// State declares one state. Meta holds free-form display metadata; the keys
// in NodeStyle are recognized by the graph renderers.
type State struct {
	ID    string         `yaml:"id"`
	Label string         `yaml:"label"`
	Meta  map[string]any `yaml:"meta"`
}

// Event declares one event.
type Event struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Transition declares one (from, event) -> to edge with its handler name.
type Transition struct {
	From  string `yaml:"from"`
	Event string `yaml:"event"`
	To    string `yaml:"to"`
	Name  string `yaml:"name"`
}

// Hook declares an entry or exit hook on a state. On is "enter" or "exit".
type Hook struct {
	State string `yaml:"state"`
	On    string `yaml:"on"`
	Name  string `yaml:"name"`
}

// NodeStyle is the renderer-recognized subset of a state's meta map.
type NodeStyle struct {
	Shape string `mapstructure:"shape"`
	Style string `mapstructure:"style"`
}

// Parse decodes and validates a YAML blueprint.
func Parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Load reads and parses a blueprint file.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}
	return Parse(data)
}

// Validate checks referential integrity: a name, a declared initial state,
// and transitions/hooks that only mention declared states and events.
func (bp *Blueprint) Validate() error {
	if bp.Name == "" {
		return fmt.Errorf("blueprint: missing name")
	}

	states := make(map[string]bool, len(bp.States))
	for _, s := range bp.States {
		if s.ID == "" {
			return fmt.Errorf("blueprint %q: state with empty id", bp.Name)
		}
		if states[s.ID] {
			return fmt.Errorf("blueprint %q: duplicate state %q", bp.Name, s.ID)
		}
		states[s.ID] = true
	}

	events := make(map[string]bool, len(bp.Events))
	for _, e := range bp.Events {
		if e.ID == "" {
			return fmt.Errorf("blueprint %q: event with empty id", bp.Name)
		}
		if events[e.ID] {
			return fmt.Errorf("blueprint %q: duplicate event %q", bp.Name, e.ID)
		}
		events[e.ID] = true
	}

	if !states[bp.Initial] {
		return fmt.Errorf("blueprint %q: initial state %q not declared", bp.Name, bp.Initial)
	}

	for _, tr := range bp.Transitions {
		if !states[tr.From] {
			return fmt.Errorf("blueprint %q: transition from unknown state %q", bp.Name, tr.From)
		}
		if !states[tr.To] {
			return fmt.Errorf("blueprint %q: transition to unknown state %q", bp.Name, tr.To)
		}
		if !events[tr.Event] {
			return fmt.Errorf("blueprint %q: transition on unknown event %q", bp.Name, tr.Event)
		}
	}

	for _, h := range bp.Hooks {
		if !states[h.State] {
			return fmt.Errorf("blueprint %q: hook on unknown state %q", bp.Name, h.State)
		}
		if h.On != "enter" && h.On != "exit" {
			return fmt.Errorf("blueprint %q: hook on state %q has invalid direction %q", bp.Name, h.State, h.On)
		}
	}

	return nil
}

// style decodes the renderer-recognized keys out of a state's meta map.
func style(meta map[string]any) (NodeStyle, error) {
	var ns NodeStyle
	if len(meta) == 0 {
		return ns, nil
	}
	if err := mapstructure.Decode(meta, &ns); err != nil {
		return ns, fmt.Errorf("failed to decode state meta: %w", err)
	}
	return ns, nil
}

// Describe renders the blueprint as a graph description, the same shape a
// live machine snapshot produces. States without a label fall back to their
// ID; there is no current state or pending queue.
func (bp *Blueprint) Describe() (graph.Description, error) {
	d := graph.Description{
		ID:   graph.NewID("G"),
		Name: bp.Name,
	}

	eventLabels := make(map[string]string, len(bp.Events))
	for _, e := range bp.Events {
		eventLabels[e.ID] = e.Label
		if e.Label == "" {
			eventLabels[e.ID] = e.ID
		}
	}

	nodeIDs := make(map[string]string, len(bp.States))
	for _, s := range bp.States {
		ns, err := style(s.Meta)
		if err != nil {
			return graph.Description{}, fmt.Errorf("state %q: %w", s.ID, err)
		}
		label := s.Label
		if label == "" {
			label = s.ID
		}
		if s.ID == bp.Initial {
			d.Initial = label
		}
		id := graph.NewID("N")
		nodeIDs[s.ID] = id
		d.Nodes = append(d.Nodes, graph.Node{
			ID:      id,
			Label:   label,
			Initial: s.ID == bp.Initial,
			Shape:   ns.Shape,
			Style:   ns.Style,
		})
	}

	for _, tr := range bp.Transitions {
		d.Edges = append(d.Edges, graph.Edge{
			From:  nodeIDs[tr.From],
			To:    nodeIDs[tr.To],
			Label: tr.Name + "\n|" + eventLabels[tr.Event] + "|",
		})
	}

	for _, h := range bp.Hooks {
		shadow := graph.Node{ID: graph.NewID("N"), Shadow: true}
		edge := graph.Edge{Label: h.Name, Dashed: true}
		if h.On == "enter" {
			shadow.Label = "Enter"
			edge.From, edge.To = shadow.ID, nodeIDs[h.State]
		} else {
			shadow.Label = "Exit"
			edge.From, edge.To = nodeIDs[h.State], shadow.ID
		}
		d.Nodes = append(d.Nodes, shadow)
		d.Edges = append(d.Edges, edge)
	}

	return d, nil
}
