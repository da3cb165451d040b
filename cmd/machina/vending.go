package main

import (
	"errors"
	"log/slog"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/pkg/graph"
)

// The demo machine is a coin-operated vending door: coins are checked while
// the door stays closed, an accepted coin opens the door until a timeout
// closes it again, and a rejected coin bounces straight back.

type demoState string

type demoEvent string

const (
	stClosed   demoState = "closedWaitForMoney"
	stChecking demoState = "checkingMoney"
	stOpen     demoState = "openWaitForTimeout"
)

const (
	evGotCoin demoEvent = "gotCoin"
	evAccept  demoEvent = "acceptMoney"
	evReject  demoEvent = "rejectMoney"
	evTimeout demoEvent = "timeout"
)

type demoCoin struct {
	Good bool
}

type demoExt struct {
	CoinsSeen     int
	CoinsAccepted int
	CoinsRejected int
	Opened        int
	Closed        int
}

type demoMachine = machina.Machine[demoState, demoEvent, demoExt, demoCoin]

type demoQueued = machina.QueuedEvent[demoEvent, demoCoin]

var errCoinMissing = errors.New("coin event without coin payload")

// newDemoMachine builds the vending door machine.
func newDemoMachine(logger *slog.Logger) *demoMachine {
	m := machina.New[demoState, demoEvent, demoExt, demoCoin](
		stClosed, demoExt{}, "vending", machina.WithLogger(logger),
	)

	checkCoin := func(x *demoExt, _ demoEvent, coin *demoCoin) ([]demoQueued, error) {
		if coin == nil {
			return nil, errCoinMissing
		}
		x.CoinsSeen++
		verdict := evReject
		if coin.Good {
			verdict = evAccept
		}
		return []demoQueued{{Event: verdict}}, nil
	}

	noop := func(x *demoExt, _ demoEvent, _ *demoCoin) ([]demoQueued, error) {
		return nil, nil
	}

	m.AddTransition(stClosed, evGotCoin, stChecking, checkCoin, "CheckCoin")
	m.AddTransition(stChecking, evAccept, stOpen, func(x *demoExt, _ demoEvent, _ *demoCoin) ([]demoQueued, error) {
		x.CoinsAccepted++
		return nil, nil
	}, "AcceptCoin")
	m.AddTransition(stChecking, evReject, stClosed, func(x *demoExt, _ demoEvent, _ *demoCoin) ([]demoQueued, error) {
		x.CoinsRejected++
		return nil, nil
	}, "BounceCoin")
	m.AddTransition(stChecking, evGotCoin, stChecking, noop, "IgnoreCoin")
	m.AddTransition(stOpen, evTimeout, stClosed, noop, "CloseDoor")

	m.OnEnter(stOpen, func(x *demoExt) ([]demoQueued, error) {
		x.Opened++
		return nil, nil
	}, "RecordOpen")
	m.OnExit(stOpen, func(x *demoExt) ([]demoQueued, error) {
		x.Closed++
		return nil, nil
	}, "RecordClose")

	return m
}

// demoLabels maps the demo machine's states and events to display names.
func demoLabels() graph.Labels[demoState, demoEvent] {
	return graph.Labels[demoState, demoEvent]{
		States: map[demoState]string{
			stClosed:   "Closed / Waiting for Money",
			stChecking: "Checking Money",
			stOpen:     "Open / Waiting for Timeout",
		},
		Events: map[demoEvent]string{
			evGotCoin: "Got Coin",
			evAccept:  "Accept",
			evReject:  "Reject",
			evTimeout: "Timeout",
		},
	}
}
