// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/tsawler/examdown"
	"github.com/tsawler/examdown/store"
)

// Options configures the HTTP server
type Options struct {
	ListenAddr     string
	Pipeline       examdown.Config
	Workers        int                // 0 keeps the extractor default
	MaxUploadBytes int                // 0 keeps the fiber default
	Store          store.Storer       // nil disables ?save=true and /runs
	Tokens         store.TokenCounter // used when saving runs
}

type Server struct {
	listenAddr string
	logger     *slog.Logger
	app        *fiber.App
}

func NewServer(opts Options) *Server {
	var (
		app = fiber.New(fiber.Config{
			ErrorHandler: ErrorHandler,
			BodyLimit:    opts.MaxUploadBytes,
		})
		checkHandler   = NewCheckHandler()
		extractHandler = NewExtractHandler(opts)
		runHandler     = NewRunHandler(opts.Store)
		check          = app.Group("/check")
		apiv1          = app.Group("/api/v1")
	)

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/extract", extractHandler.HandleExtract)
	apiv1.Get("/runs/:id", runHandler.HandleGetRun)

	return &Server{
		listenAddr: opts.ListenAddr,
		logger:     slog.Default(),
		app:        app,
	}
}

// App returns the underlying fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens until the server is shut down
func (s *Server) Run() error {
	s.logger.Info("server started", "addr", s.listenAddr)
	if err := s.app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for running requests
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.logger.Info("server stopped")
	return s.app.ShutdownWithContext(ctx)
}
