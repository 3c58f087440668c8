package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz"
	fileAdapter "github.com/sortviz/sortviz/internal/adapters/file"
	httpAdapter "github.com/sortviz/sortviz/internal/adapters/http"
	redisAdapter "github.com/sortviz/sortviz/internal/adapters/redis"
	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/internal/logging"
	"github.com/sortviz/sortviz/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts Sortviz in server mode, exposing a JSON API over HTTP:
run sorts, fetch stored traces, and stream replays as Server-Sent Events.
Prometheus metrics are exposed at /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen, _ := cmd.Flags().GetString("listen")
		useRedis, _ := cmd.Flags().GetBool("redis")
		cfgPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		logLevel, _ := cmd.Flags().GetString("log-level")

		cfg := config.Default()
		if cfgPath != "" {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}
		if cmd.Flags().Changed("listen") {
			cfg.Listen = listen
		}

		level := logging.ParseLevel(logLevel)
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		metrics := observability.NewMetrics()
		engine := sortviz.New(
			sortviz.WithLogger(logger),
			sortviz.WithMetrics(metrics),
		)

		var store httpAdapter.TraceStore
		if useRedis {
			store = redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithPrefix(cfg.Redis.Prefix),
				redisAdapter.WithTTL(cfg.Redis.TTL.Std()),
			)
		} else {
			fs, err := fileAdapter.New(cfg.Traces.Dir)
			if err != nil {
				fmt.Printf("Error opening trace store: %v\n", err)
				os.Exit(1)
			}
			store = fs
		}

		handler, err := httpAdapter.NewHandler(engine,
			httpAdapter.WithStore(store),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(metrics.Handler()),
			httpAdapter.WithStreamDelay(cfg.Replay.Delay.Std()),
		)
		if err != nil {
			fmt.Printf("Error building handler: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Sortviz Server on %s\n", srv.Addr)
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
			fmt.Println("Sortviz Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
	serveCmd.Flags().Bool("redis", false, "Persist traces in Redis instead of the filesystem")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
}
