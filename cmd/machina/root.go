package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/machina/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "machina",
	Short: "Machina is an embeddable finite state machine engine",
	Long:  `Machina drives event-queued state machines with extended state, and ships tooling to run, inspect and visualize them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the application logger from the --log-level flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		fmt.Printf("Warning: %v, using info\n", err)
	}
	return logging.New(level)
}
