package machina

// TransitionInfo is one registered transition in a Snapshot.
type TransitionInfo[S comparable, E comparable] struct {
	From  S
	Event E
	To    S
	Name  string
}

// HookInfo is one registered entry/exit hook in a Snapshot.
type HookInfo[S comparable] struct {
	State     S
	Direction Direction
	Name      string
}

// Snapshot is a read-only copy of a machine's identity and tables, taken
// between Process calls. It feeds diagnostic collaborators (graph exporters,
// introspection servers) without entangling them with the engine. Slice
// order is unspecified; renderers sort by label.
type Snapshot[S comparable, E comparable] struct {
	Name        string
	Initial     S
	Current     S
	Pending     int
	Transitions []TransitionInfo[S, E]
	Hooks       []HookInfo[S]
}

// Snapshot captures the machine's registered tables and position. The copy
// is detached: later registrations or processing do not affect it.
func (m *Machine[S, E, X, P]) Snapshot() Snapshot[S, E] {
	snap := Snapshot[S, E]{
		Name:        m.name,
		Initial:     m.initial,
		Current:     m.current,
		Pending:     len(m.queue),
		Transitions: make([]TransitionInfo[S, E], 0, len(m.transitions)),
		Hooks:       make([]HookInfo[S], 0, len(m.hooks)),
	}
	for key, entry := range m.transitions {
		snap.Transitions = append(snap.Transitions, TransitionInfo[S, E]{
			From: key.State, Event: key.Event, To: entry.To, Name: entry.Name,
		})
	}
	for key, entry := range m.hooks {
		snap.Hooks = append(snap.Hooks, HookInfo[S]{
			State: key.State, Direction: key.Direction, Name: entry.Name,
		})
	}
	return snap
}
