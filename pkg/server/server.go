/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/time/rate"
)

const (
	defaultName    = "datecompare-api"
	defaultVersion = "dev"
)

// Server serves registered API handlers plus the system endpoints.
type Server struct {
	name     string
	version  string
	config   *Config
	handlers map[string]http.HandlerFunc
	limiter  *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithName sets the service name reported by the root endpoint.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the service version reported by the root endpoint.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithHandler registers API handlers by path. They are wrapped with the
// middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for path, h := range handlers {
			s.handlers[path] = h
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// New creates a Server. Without WithConfig the configuration comes from
// DefaultConfig.
func New(opts ...Option) *Server {
	s := &Server{
		name:     defaultName,
		version:  defaultVersion,
		handlers: map[string]http.HandlerFunc{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	s.limiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	return s
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Handler returns the root handler with all routes.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// SetReady changes the readiness reported by /ready.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Run listens on the configured address and serves until ctx is done or the
// process receives SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.SetReady(true)
	slog.Info("server listening", "address", ln.Addr().String(), "name", s.name, "version", s.version)

	select {
	case err := <-errCh:
		s.SetReady(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.SetReady(false)
	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
