package machina

import (
	"io"
	"log/slog"
)

// Machine is a finite state machine with extended state.
//
// Type parameters:
//   - S: state type, must support equality (any comparable value).
//   - E: event type, must support equality.
//   - X: extended state, the single mutable context every handler can read
//     and mutate.
//   - P: payload type carried by event instances (one payload type per
//     machine; individual events carry *P, nil meaning no payload).
//
// A Machine is synchronous, single-threaded, and non-reentrant. It provides
// no internal locking; callers sharing one instance across goroutines must
// serialize every call externally.
type Machine[S comparable, E comparable, X any, P any] struct {
	name     string
	initial  S
	current  S
	extended X

	queue       []QueuedEvent[E, P]
	transitions map[transitionKey[S, E]]transitionEntry[S, E, X, P]
	hooks       map[hookKey[S]]hookEntry[E, X, P]

	logger    *slog.Logger
	lifecycle LifecycleHooks[S, E]

	// running guards against re-entrant Process/Enqueue calls from inside
	// handlers, failing fast instead of corrupting the wave.
	running bool
}

// Option configures machine construction.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets a structured logger for the machine. The logger is a pure
// trace sink: it receives a message at each registration and at each step of
// Process, and is never required for correctness. Defaults to a discard
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a machine in the initial state, owning the given extended
// state value for its entire lifetime, with empty queue and tables.
func New[S comparable, E comparable, X any, P any](initial S, extended X, name string, opts ...Option) *Machine[S, E, X, P] {
	s := settings{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&s)
	}

	return &Machine[S, E, X, P]{
		name:        name,
		initial:     initial,
		current:     initial,
		extended:    extended,
		transitions: make(map[transitionKey[S, E]]transitionEntry[S, E, X, P]),
		hooks:       make(map[hookKey[S]]hookEntry[E, X, P]),
		logger:      s.logger.With("machine", name),
	}
}

// Observe registers lifecycle hooks for observability. Replaces any
// previously registered set.
func (m *Machine[S, E, X, P]) Observe(hooks LifecycleHooks[S, E]) {
	m.lifecycle = hooks
}

// Name returns the machine's display name.
func (m *Machine[S, E, X, P]) Name() string { return m.name }

// CurrentState returns the current state. Callers must not assume the
// machine rests in any particular state until Pending reports false.
func (m *Machine[S, E, X, P]) CurrentState() S { return m.current }

// ExtendedState gives a read-only peek into the extended state from outside
// of handlers. The returned pointer must be given up before the next Process
// call: the engine and the caller never hold overlapping access.
func (m *Machine[S, E, X, P]) ExtendedState() *X { return &m.extended }

// Pending reports whether the machine has outstanding events queued.
func (m *Machine[S, E, X, P]) Pending() bool { return len(m.queue) > 0 }

// Enqueue appends events to the back of the queue in the given order. It
// never processes them. It fails only on re-entrant use from inside a
// running handler or hook; handlers emit follow-up events via their return
// value instead.
func (m *Machine[S, E, X, P]) Enqueue(events ...QueuedEvent[E, P]) (int, error) {
	if m.running {
		return 0, ErrReentrantProcess
	}
	m.queue = append(m.queue, events...)
	m.logger.Debug("events enqueued", "count", len(events), "pending", len(m.queue))
	return len(events), nil
}

// Process drains the queue one wave at a time.
//
// It captures every event currently queued into an ordered wave, leaving the
// live queue empty, and processes the wave in original order. Events emitted
// by handlers or hooks during the wave land on the live queue and are only
// processed by a subsequent Process call, so callers must keep calling
// Process until Pending reports false to drain cascading effects.
//
// The first failing step aborts the wave: the error is returned, and the
// wave's remaining events are discarded, not requeued. Mutations performed
// by steps that already completed are retained; there is no rollback. On any
// error the machine must be shut down by its owner. On success Process
// returns the number of events originally captured into the wave.
func (m *Machine[S, E, X, P]) Process() (int, error) {
	if m.running {
		return 0, ErrReentrantProcess
	}
	m.running = true
	defer func() { m.running = false }()

	wave := m.queue
	m.queue = nil
	m.logger.Debug("processing wave", "size", len(wave))
	if m.lifecycle.OnWave != nil {
		m.lifecycle.OnWave(m.name, len(wave))
	}

	for i, queued := range wave {
		if err := m.step(queued); err != nil {
			m.logger.Debug("wave aborted", "err", err, "discarded", len(wave)-i-1)
			if m.lifecycle.OnError != nil {
				m.lifecycle.OnError(m.name, err)
			}
			return 0, err
		}
	}
	return len(wave), nil
}

// step applies a single queued event: transition lookup, exit hook,
// transition handler, state change, enter hook, in that order.
func (m *Machine[S, E, X, P]) step(queued QueuedEvent[E, P]) error {
	state := m.current
	entry, ok := m.transitions[transitionKey[S, E]{State: state, Event: queued.Event}]
	if !ok {
		return &NoTransitionError[E, S]{Event: queued.Event, State: state}
	}

	m.logger.Debug("processing event", "event", queued.Event, "state", state)

	// Exit and enter hooks only fire when the machine actually changes
	// state; a self-transition runs the handler alone.
	moving := entry.To != state

	if moving {
		if err := m.fireHook(state, Exit, queued.Event, state); err != nil {
			return err
		}
	}

	emitted, err := entry.Fn(&m.extended, queued.Event, queued.Payload)
	if err != nil {
		return coerce(err, queued.Event, state)
	}
	m.queue = append(m.queue, emitted...)

	// The destination is fixed by the table entry; the state moves only
	// after the handler succeeded.
	m.current = entry.To
	if moving {
		m.logger.Debug("state changed", "from", state, "to", entry.To, "event", queued.Event)
	}
	if m.lifecycle.OnTransition != nil {
		m.lifecycle.OnTransition(TransitionNotice[S, E]{
			Machine: m.name, From: state, To: entry.To, Event: queued.Event, Name: entry.Name,
		})
	}

	if moving {
		// An enter hook failure aborts the wave but the state change above
		// is retained.
		if err := m.fireHook(entry.To, Enter, queued.Event, entry.To); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine[S, E, X, P]) fireHook(state S, dir Direction, event E, errState S) error {
	hook, ok := m.hooks[hookKey[S]{State: state, Direction: dir}]
	if !ok {
		return nil
	}

	m.logger.Debug("firing hook", "state", state, "direction", dir, "name", hook.Name)
	emitted, err := hook.Fn(&m.extended)
	if err != nil {
		return coerce(err, event, errState)
	}
	m.queue = append(m.queue, emitted...)
	if m.lifecycle.OnHook != nil {
		m.lifecycle.OnHook(HookNotice[S]{Machine: m.name, State: state, Direction: dir, Name: hook.Name})
	}
	return nil
}
