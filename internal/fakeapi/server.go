package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Server wraps an HTTP server with graceful shutdown.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer returns a server for handler listening on port.
func NewServer(port string, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 70 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks until the server stops. A graceful Stop is not an error.
func (s *Server) Start() error {
	s.logger.Info("starting stand-in analysis API", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop shuts the server down, waiting up to 30 seconds for open requests.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down stand-in analysis API")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
