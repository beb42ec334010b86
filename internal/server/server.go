// Package server exposes the pipeline over HTTP: the Twilio SMS
// webhook, a JSON test endpoint, and a small admin surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/onneile/molemi/internal/repository"
)

// Config holds HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns server settings for local use.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves the SMS webhook and admin endpoints.
type Server struct {
	cfg     Config
	handler MessageHandler
	turns   repository.TurnRepo
	db      dbPinger
	llm     llmChecker
	log     *slog.Logger
	httpSrv *http.Server
}

// New creates a Server wired to the given pipeline and storage. llm may
// be nil; health checks then skip the model endpoint.
func New(cfg Config, handler MessageHandler, turns repository.TurnRepo, db dbPinger, llm llmChecker, log *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		handler: handler,
		turns:   turns,
		db:      db,
		llm:     llm,
		log:     log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sms/inbound", s.handleSMSInbound)
	mux.HandleFunc("POST /test/inbound", s.handleTestInbound)
	mux.HandleFunc("GET /admin/turns", s.handleAdminTurns)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	wrapped := Chain(RequestID, Logger(log), Recovery(log))(mux)

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      wrapped,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server.listen", slog.String("addr", s.cfg.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	s.log.Info("server.stopped")
	return nil
}
