package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/internal/tui"
	"github.com/aretw0/machina/pkg/graph"
)

// demoCmd runs the vending door machine, either scripted via --events or
// interactively from stdin.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the vending machine demo",
	Long: `Drives the built-in vending door machine. Pass a scripted event list with
--events (e.g. "coin:good,timeout"), or run on a terminal for an interactive
prompt. Each queued batch is drained wave by wave, printing every transition.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		script, _ := cmd.Flags().GetString("events")

		m := newDemoMachine(logger)
		labels := demoLabels()
		m.Observe(machina.LifecycleHooks[demoState, demoEvent]{
			OnTransition: func(n machina.TransitionNotice[demoState, demoEvent]) {
				fmt.Printf("  %s: %s -> %s on %s\n",
					n.Name,
					tui.StateLabel(labels.State(n.From)),
					tui.StateLabel(labels.State(n.To)),
					tui.EventLabel(labels.Event(n.Event)),
				)
			},
		})

		tui.PrintBanner()

		if script != "" {
			if err := runScript(m, script); err != nil {
				fmt.Println(tui.ErrorLabel(fmt.Sprintf("Error: %v", err)))
				os.Exit(1)
			}
			printCounters(m)
			return
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("No --events given and stdin is not a terminal. Try: machina demo --events coin:good,timeout")
			os.Exit(1)
		}

		runInteractive(m, labels)
		printCounters(m)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().String("events", "", `Comma-separated event script, e.g. "coin:good,coin:bad,timeout"`)
}

// parseToken maps a script token to a queued event. Recognized tokens:
// coin:good, coin:bad, timeout.
func parseToken(token string) (demoQueued, error) {
	switch token {
	case "coin:good":
		return demoQueued{Event: evGotCoin, Payload: &demoCoin{Good: true}}, nil
	case "coin:bad":
		return demoQueued{Event: evGotCoin, Payload: &demoCoin{Good: false}}, nil
	case "timeout":
		return demoQueued{Event: evTimeout}, nil
	default:
		return demoQueued{}, fmt.Errorf("unknown event %q (want coin:good, coin:bad or timeout)", token)
	}
}

// runScript enqueues each scripted event and drains the queue between them.
func runScript(m *demoMachine, script string) error {
	for _, token := range strings.Split(script, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		queued, err := parseToken(token)
		if err != nil {
			return err
		}
		if _, err := m.Enqueue(queued); err != nil {
			return err
		}
		if err := drain(m); err != nil {
			return err
		}
	}
	return nil
}

// drain keeps processing until no cascaded events remain.
func drain(m *demoMachine) error {
	for m.Pending() {
		if _, err := m.Process(); err != nil {
			return err
		}
	}
	return nil
}

func runInteractive(m *demoMachine, labels graph.Labels[demoState, demoEvent]) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Events: coin:good, coin:bad, timeout. Type 'exit' to quit.")

	for {
		fmt.Printf("[%s] > ", tui.StateLabel(labels.State(m.CurrentState())))
		text, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		token := strings.TrimSpace(text)
		if token == "exit" || token == "quit" {
			return
		}
		if token == "" {
			continue
		}

		queued, err := parseToken(token)
		if err != nil {
			fmt.Println(tui.ErrorLabel(err.Error()))
			continue
		}
		if _, err := m.Enqueue(queued); err != nil {
			fmt.Println(tui.ErrorLabel(err.Error()))
			continue
		}
		if err := drain(m); err != nil {
			// A failed wave leaves the machine unusable; report and stop.
			fmt.Println(tui.ErrorLabel(fmt.Sprintf("machine halted: %v", err)))
			return
		}
	}
}

func printCounters(m *demoMachine) {
	x := m.ExtendedState()
	fmt.Printf("\nCoins seen: %d, accepted: %d, rejected: %d. Door opened %d time(s), closed %d time(s).\n",
		x.CoinsSeen, x.CoinsAccepted, x.CoinsRejected, x.Opened, x.Closed)
}
