/*
Package machina is a generic, embeddable finite-state-machine engine with
extended state. It is infrastructure meant to be linked into larger protocol
and workflow implementations (a vending controller, a protocol session), not
an end-user program.

# Concept

A Machine owns a current state, a single mutable extended-state value, a FIFO
event queue, and two lookup tables: transitions keyed by (state, event) and
entry/exit hooks keyed by (state, direction). The application registers
handlers, enqueues events, and drives the machine by calling Process until
Pending reports false.

Processing is wave-based: each Process call captures every queued event into
an ordered wave and applies them in order. Events emitted by handlers or
hooks during a wave are deferred to the next wave, so the machine is only at
rest once the queue is fully drained. The first failing step aborts the wave,
discards its remaining events, and renders the machine dead: the documented
contract on any error is that the owner must shut the machine down.

# Key Properties

  - Generic over state, event, extended-state, and payload types; states and
    events need only be comparable.
  - Deterministic ordering: exit hook, transition handler, state change,
    enter hook. Self-transitions fire no hooks.
  - Fail-fast, no rollback: completed steps of an aborted wave are retained.
  - Purely synchronous: no timers, no goroutines, no internal locking.

# Usage

	type doorState string
	type doorEvent string

	const (
		Open   doorState = "open"
		Closed doorState = "closed"

		Push doorEvent = "push"
	)

	type counters struct{ Pushes int }

	m := machina.New[doorState, doorEvent, counters, struct{}](Closed, counters{}, "door")
	m.AddTransition(Closed, Push, Open, func(x *counters, _ doorEvent, _ *struct{}) ([]machina.QueuedEvent[doorEvent, struct{}], error) {
		x.Pushes++
		return nil, nil
	}, "PushOpen")

	m.Enqueue(machina.QueuedEvent[doorEvent, struct{}]{Event: Push})
	for m.Pending() {
		if _, err := m.Process(); err != nil {
			// the machine must be shut down
			break
		}
	}

Diagnostic collaborators (the graph exporter in pkg/graph, the introspection
server in pkg/adapters/httpserver) consume read-only Snapshot values and
never affect engine semantics.
*/
package machina

// Version is the library version reported by the machina CLI.
const Version = "0.1.0"
