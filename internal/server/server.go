// Package server exposes the dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/euncover/euncover/internal/dashboard"
	"github.com/euncover/euncover/internal/logger"
)

// Config configures the HTTP server.
type Config struct {
	Addr string

	// Assets maps served file names to paths on disk.
	Assets map[string]string
	// Logo and Pipeline name entries of Assets shown on the page.
	Logo     string
	Pipeline string

	RateLimitRPS   float64
	RateLimitBurst int

	Logger *slog.Logger
}

// Server serves the dashboard page, the JSON page model and the
// standalone network graph.
type Server struct {
	ctrl    *dashboard.Controller
	metrics *Metrics
	limiter *clientLimiter
	assets  map[string]string
	page    dashboard.Assets
	addr    string
	log     *slog.Logger

	onListen func()
}

// New creates a server. metrics should be the same instance whose
// PanelError method was given to the controller.
func New(ctrl *dashboard.Controller, metrics *Metrics, cfg Config) *Server {
	s := &Server{
		ctrl:    ctrl,
		metrics: metrics,
		limiter: newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		assets:  cfg.Assets,
		addr:    cfg.Addr,
		log:     cfg.Logger,
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.assets == nil {
		s.assets = map[string]string{}
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if _, ok := s.assets[cfg.Logo]; ok {
		s.page.Logo = "/assets/" + cfg.Logo
	}
	if _, ok := s.assets[cfg.Pipeline]; ok {
		s.page.Pipeline = "/assets/" + cfg.Pipeline
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /network", s.handleNetwork)
	mux.HandleFunc("GET /api/mep", s.handleAPI)
	mux.HandleFunc("GET /assets/{name}", s.handleAsset)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	var h http.Handler = mux
	h = s.rateLimitMiddleware(h)
	h = s.observeMiddleware(h)
	h = s.requestIDMiddleware(h)
	h = s.panicRecoveryMiddleware(h)
	return h
}

// OnListen registers fn to run once the listener is bound.
func (s *Server) OnListen(fn func()) {
	s.onListen = fn
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("dashboard listening", "addr", ln.Addr().String())
	if s.onListen != nil {
		s.onListen()
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
