// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushub/registra/internal/bootstrap"
	"github.com/campushub/registra/internal/pkg/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and the application dependencies.
type Server struct {
	deps *bootstrap.Dependencies
	http *http.Server
}

// New creates a server from the assembled dependencies.
func New(deps *bootstrap.Dependencies) *Server {
	return &Server{
		deps: deps,
		http: &http.Server{
			Addr:    ":" + deps.Config.Server.Port,
			Handler: deps.Router,
		},
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests and
// closes the store.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("Server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.deps.Store.Close()
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	s.deps.Store.Close()
	if err != nil {
		return err
	}

	logger.Info().Msg("Server stopped")
	return nil
}
