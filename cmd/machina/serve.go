package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/machina/internal/config"
	"github.com/aretw0/machina/pkg/adapters/httpserver"
	"github.com/aretw0/machina/pkg/graph"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP introspection server",
	Long:  `Serves the built-in vending machine demo over HTTP: current state, queue depth and graph exports.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg config.Serve
		if err := config.Load(&cfg); err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if !cmd.Flags().Changed("log-level") {
			_ = cmd.Flags().Set("log-level", cfg.LogLevel)
		}
		logger := newLogger(cmd)

		m := newDemoMachine(logger)
		labels := demoLabels()
		inspector := httpserver.InspectorFunc(func() graph.Description {
			return graph.Describe(m.Snapshot(), labels)
		})

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: httpserver.NewHandler(inspector, logger),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Machina introspection server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Machina server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on (overrides MACHINA_ADDR)")
}
