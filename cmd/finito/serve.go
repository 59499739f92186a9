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
	"gopkg.in/yaml.v3"

	httpAdapter "github.com/finitolabs/finito/internal/adapters/http"
	"github.com/finitolabs/finito/internal/logging"
)

// serveConfig is the optional YAML configuration for the server.
type serveConfig struct {
	Addr    string `yaml:"addr"`
	Machine string `yaml:"machine"` // machine file preloaded at startup
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the engine behind a JSON API over HTTP, with prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := serveConfig{Addr: ":8080"}
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("Error reading config: %v\n", err)
				os.Exit(1)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				fmt.Printf("Error parsing config: %v\n", err)
				os.Exit(1)
			}
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Addr = ":" + port
		}

		eng := newEngine(cmd)
		if cfg.Machine != "" {
			if err := loadMachineFile(eng, cfg.Machine); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		handler := httpAdapter.NewMeteredHandler(eng, logging.New(os.Stderr, slog.LevelInfo))
		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Finito server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		case sig := <-shutdown:
			fmt.Printf("Shutting down on %v...\n", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "Port to listen on (overrides config)")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
}
