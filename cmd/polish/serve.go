package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/polish"
	httpAdapter "github.com/aretw0/polish/internal/adapters/http"
	"github.com/aretw0/polish/internal/cli"
	"github.com/aretw0/polish/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/polish/pkg/adapters/redis"
	"github.com/aretw0/polish/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the Polish engine in server mode, exposing a JSON API over HTTP.
Successful analyses are kept in a history store, in memory by default or in
Redis when --redis is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		historyTTL, _ := cmd.Flags().GetDuration("history-ttl")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := cli.NewLogger(debug)
		engine := polish.New(polish.WithLogger(logger))

		var store ports.AnalysisStore = memory.NewStore()
		if redisAddr != "" {
			store = redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(historyTTL))
		}

		handler := httpAdapter.NewHandler(engine, store, prometheus.NewRegistry(), logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Polish Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the history store (empty = in-memory)")
	serveCmd.Flags().Duration("history-ttl", 0, "Expiration for Redis history entries (0 = keep forever)")
}
