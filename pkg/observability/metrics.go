// Package observability wires machine lifecycle notifications into
// Prometheus metrics. Bind produces a LifecycleHooks value an application
// registers with Observe; the engine itself carries no metrics dependency.
package observability

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/machina"
)

// Metrics holds the collectors populated by bound machines. One Metrics
// value can serve many machines; series are partitioned by machine name.
type Metrics struct {
	transitions *prometheus.CounterVec
	hooks       *prometheus.CounterVec
	errors      *prometheus.CounterVec
	waveSize    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "machina_transitions_total",
				Help: "Total number of completed transitions",
			},
			[]string{"machine", "from", "to", "event"},
		),
		hooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "machina_hooks_total",
				Help: "Total number of fired entry/exit hooks",
			},
			[]string{"machine", "state", "direction"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "machina_errors_total",
				Help: "Total number of aborted waves by error kind",
			},
			[]string{"machine", "kind"},
		),
		waveSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "machina_wave_size",
				Help:    "Number of events captured per processing wave",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"machine"},
		),
	}

	reg.MustRegister(m.transitions, m.hooks, m.errors, m.waveSize)
	return m
}

// Bind builds lifecycle hooks that record into m. State and event values are
// rendered with fmt.Sprint; applications wanting display names should use
// types with a String method.
func Bind[S comparable, E comparable](m *Metrics) machina.LifecycleHooks[S, E] {
	return machina.LifecycleHooks[S, E]{
		OnWave: func(machine string, size int) {
			m.waveSize.WithLabelValues(machine).Observe(float64(size))
		},
		OnTransition: func(n machina.TransitionNotice[S, E]) {
			m.transitions.WithLabelValues(
				n.Machine,
				fmt.Sprint(n.From),
				fmt.Sprint(n.To),
				fmt.Sprint(n.Event),
			).Inc()
		},
		OnHook: func(n machina.HookNotice[S]) {
			m.hooks.WithLabelValues(n.Machine, fmt.Sprint(n.State), string(n.Direction)).Inc()
		},
		OnError: func(machine string, err error) {
			m.errors.WithLabelValues(machine, kind[S, E](err)).Inc()
		},
	}
}

// kind classifies an error into its taxonomy bucket for the errors counter.
func kind[S comparable, E comparable](err error) string {
	var noTransition *machina.NoTransitionError[E, S]
	if errors.As(err, &noTransition) {
		return "no_transition"
	}
	if errors.Is(err, machina.ErrTransitionFailure) {
		return "transition_failure"
	}
	var internal *machina.InternalError[E, S]
	if errors.As(err, &internal) {
		return "internal"
	}
	return "other"
}
