package machina

// Direction selects which side of a state change an entry/exit hook observes.
type Direction string

const (
	// Enter hooks fire immediately after a transition moves the machine into
	// their state.
	Enter Direction = "enter"
	// Exit hooks fire immediately before a transition moves the machine out
	// of their state.
	Exit Direction = "exit"
)

// QueuedEvent pairs an event with its optional payload. A nil payload means
// the event carries none. Payload ownership moves into the transition
// handler when the event is dispatched; callers must not retain it.
type QueuedEvent[E comparable, P any] struct {
	Event   E
	Payload *P
}

// TransitionFunc is the application handler bound to a (state, event) pair.
// It receives exclusive mutable access to the extended state for the duration
// of the call, the triggering event, and the event's payload (nil if absent).
//
// Returned events are appended to the live queue and processed in a later
// wave, never in the current one. Returning a non-nil error aborts the wave;
// the machine must then be considered dead by its owner.
type TransitionFunc[E comparable, X any, P any] func(x *X, event E, payload *P) ([]QueuedEvent[E, P], error)

// HookFunc is the handler bound to a (state, direction) pair. Hooks see only
// the extended state; like transition handlers they may emit follow-up
// events or fail, with the same queueing and abort semantics.
type HookFunc[E comparable, X any, P any] func(x *X) ([]QueuedEvent[E, P], error)

// TransitionNotice describes one applied transition for lifecycle observers.
type TransitionNotice[S comparable, E comparable] struct {
	Machine string
	From    S
	To      S
	Event   E
	Name    string
}

// HookNotice describes one fired entry/exit hook for lifecycle observers.
type HookNotice[S comparable] struct {
	Machine   string
	State     S
	Direction Direction
	Name      string
}

// LifecycleHooks carries optional observability callbacks. All callbacks are
// purely observational: they run after the fact, must not touch the machine,
// and never affect control flow. Nil fields are skipped.
type LifecycleHooks[S comparable, E comparable] struct {
	// OnWave fires when Process captures a wave, with the wave size.
	OnWave func(machine string, size int)
	// OnTransition fires after a transition handler succeeded and the
	// current state moved (or stayed, for self-transitions).
	OnTransition func(TransitionNotice[S, E])
	// OnHook fires after an entry/exit hook returned successfully.
	OnHook func(HookNotice[S])
	// OnError fires when Process is about to return an error.
	OnError func(machine string, err error)
}
