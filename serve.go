package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"commandapi/api"
	"commandapi/db"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API server",
	Long: `Start the HTTP API server. Commands are served under /api/commands:

  GET    /api/commands        list
  POST   /api/commands        create
  GET    /api/commands/{id}   get
  PUT    /api/commands/{id}   update
  DELETE /api/commands/{id}   delete`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "address to listen on (default 127.0.0.1:8080)")
	serveCmd.Flags().Duration("shutdown-timeout", 0, "how long to wait for requests in flight on shutdown (default 10s)")
	mustBind("listen", serveCmd.Flags().Lookup("listen"))
	mustBind("shutdownTimeout", serveCmd.Flags().Lookup("shutdown-timeout"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := db.Open(cfg.Driver, cfg.DSN, log)
	if err != nil {
		return err
	}
	defer store.Close()

	e := api.NewServer(store, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "listen", cfg.Listen, "driver", cfg.Driver)
		serverErr <- e.Start(cfg.Listen)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error("server error", "error", err)
		return err
	case <-ctx.Done():
		log.Info("received shutdown signal")
	}

	graceful, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(graceful); err != nil {
		log.Error("error during shutdown", "error", err)
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
