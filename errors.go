package machina

import (
	"errors"
	"fmt"
)

var (
	// ErrTransitionFailure is the generic fatal failure for breakage that
	// fits no other category. Like every engine error, it means the machine
	// must be shut down.
	ErrTransitionFailure = errors.New("machina: transition failure")

	// ErrReentrantProcess is returned when Process or Enqueue is called from
	// inside a running handler or hook. Handlers emit follow-up events via
	// their return value instead.
	ErrReentrantProcess = errors.New("machina: re-entrant machine access")
)

// NoTransitionError reports an event with no registered transition for the
// machine's current state. It signals a protocol or programming error: the
// event was not valid in that state.
type NoTransitionError[E comparable, S comparable] struct {
	Event E
	State S
}

func (e *NoTransitionError[E, S]) Error() string {
	return fmt.Sprintf("machina: no transition for event %v in state %v", e.Event, e.State)
}

// InternalError wraps an application failure reported by a transition
// handler or an entry/exit hook, annotated with the event and state of the
// failing step.
type InternalError[E comparable, S comparable] struct {
	Event E
	State S
	Cause error
}

func (e *InternalError[E, S]) Error() string {
	return fmt.Sprintf("machina: handler failed for event %v in state %v: %v", e.Event, e.State, e.Cause)
}

func (e *InternalError[E, S]) Unwrap() error { return e.Cause }

// coerce folds a handler error into the engine taxonomy. Errors that already
// belong to it pass through unchanged; anything else becomes an
// InternalError carrying the failing step's event and state.
func coerce[E comparable, S comparable](err error, event E, state S) error {
	var noTransition *NoTransitionError[E, S]
	var internal *InternalError[E, S]
	if errors.As(err, &noTransition) || errors.As(err, &internal) || errors.Is(err, ErrTransitionFailure) {
		return err
	}
	return &InternalError[E, S]{Event: event, State: state, Cause: err}
}
