package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/examdown/server"
	"github.com/tsawler/examdown/store"
)

// shutdownTimeout bounds how long running requests may finish on shutdown
const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start an HTTP server exposing GET /check/healthy and POST /api/v1/extract.

When a database URL is configured, ?save=true stores extracted runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.config.Server.ListenAddr
			}
			return a.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to EXAMDOWN_LISTEN_ADDR or server.listen_addr)")
	return cmd
}

func (a *app) runServe(ctx context.Context, addr string) error {
	pipeline, err := a.config.Pipeline()
	if err != nil {
		return err
	}

	opts := server.Options{
		ListenAddr:     addr,
		Pipeline:       pipeline,
		Workers:        a.config.Layout.Workers,
		MaxUploadBytes: a.config.Server.MaxUploadMB * 1024 * 1024,
	}

	if a.config.Database.URL != "" {
		db, err := store.NewPostgresStore(ctx, a.config.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Init(ctx); err != nil {
			return err
		}
		opts.Store = db

		if tc, err := store.NewTiktokenCounter("gpt-3.5-turbo"); err != nil {
			slog.Warn("token counting disabled", "error", err)
		} else {
			opts.Tokens = tc
		}
	}

	s := server.NewServer(opts)

	errc := make(chan error, 1)
	go func() { errc <- s.Run() }()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)

	select {
	case err := <-errc:
		return err
	case <-sigch:
		slog.Info("received shutdown signal, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
