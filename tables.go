package machina

// transitionKey identifies a transition origination point.
type transitionKey[S comparable, E comparable] struct {
	State S
	Event E
}

// transitionEntry is the target of a transition upon an event: the resulting
// state, the handler, and an optional display name (helpful when the handler
// is a closure).
type transitionEntry[S comparable, E comparable, X any, P any] struct {
	To   S
	Fn   TransitionFunc[E, X, P]
	Name string
}

type hookKey[S comparable] struct {
	State     S
	Direction Direction
}

type hookEntry[E comparable, X any, P any] struct {
	Fn   HookFunc[E, X, P]
	Name string
}

// AddTransition registers fn for the (from, event) pair, moving the machine
// to the to state on success. At most one entry exists per pair: inserting
// over an existing key overwrites it.
//
// Returns true if the slot was previously empty, false if an existing
// registration was overwritten. Callers should treat an overwrite as a
// configuration warning, not an error. Registration is legal at any point in
// the machine's lifetime.
func (m *Machine[S, E, X, P]) AddTransition(from S, event E, to S, fn TransitionFunc[E, X, P], name string) bool {
	key := transitionKey[S, E]{State: from, Event: event}
	_, overwrote := m.transitions[key]
	m.transitions[key] = transitionEntry[S, E, X, P]{To: to, Fn: fn, Name: name}
	m.logger.Debug("transition registered",
		"from", from, "event", event, "to", to, "name", name, "overwrote", overwrote)
	return !overwrote
}

// OnEnter registers a hook that fires immediately after a transition moves
// the machine into state. Self-transitions fire no hooks. Overwrite
// reporting matches AddTransition.
func (m *Machine[S, E, X, P]) OnEnter(state S, fn HookFunc[E, X, P], name string) bool {
	return m.addHook(state, Enter, fn, name)
}

// OnExit registers a hook that fires immediately before a transition moves
// the machine out of state. Self-transitions fire no hooks. Overwrite
// reporting matches AddTransition.
func (m *Machine[S, E, X, P]) OnExit(state S, fn HookFunc[E, X, P], name string) bool {
	return m.addHook(state, Exit, fn, name)
}

func (m *Machine[S, E, X, P]) addHook(state S, dir Direction, fn HookFunc[E, X, P], name string) bool {
	key := hookKey[S]{State: state, Direction: dir}
	_, overwrote := m.hooks[key]
	m.hooks[key] = hookEntry[E, X, P]{Fn: fn, Name: name}
	m.logger.Debug("hook registered",
		"state", state, "direction", dir, "name", name, "overwrote", overwrote)
	return !overwrote
}
