/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package server serves the GraphQL API over HTTP and exposes Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/botobag/pokedex/internal/config"

	"github.com/botobag/artemis/graphql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Routes served by Server
const (
	RouteGraphQL  = "/graphql"
	RouteExplorer = "/"
	RouteHealth   = "/health"
	RouteMetrics  = "/metrics"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the GraphQL API.
type Server struct {
	cfg     config.ServerConfig
	handler http.Handler
}

// New creates a Server that serves queries against s.
func New(cfg config.ServerConfig, s graphql.Schema) (*Server, error) {
	graphqlHandler, err := newGraphQLHandler(s, cfg.MaxBodySize, cfg.OperationCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating GraphQL handler: %w", err)
	}

	mux := http.NewServeMux()

	mux.Handle(RouteGraphQL, instrument(RouteGraphQL, graphqlHandler))

	if cfg.Explorer {
		mux.Handle(RouteExplorer, instrument(RouteExplorer, explorerHandler("Pokédex", RouteGraphQL)))
	}

	mux.Handle(RouteHealth, instrument(RouteHealth, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})))

	return &Server{
		cfg:     cfg,
		handler: mux,
	}, nil
}

// Handler returns the handler serving every API route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured port and serves the API until ctx is done, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().
		Int("port", s.cfg.Port).
		Msgf("running a GraphQL API server at localhost:%d%s", s.cfg.Port, RouteGraphQL)

	return s.serve(ctx, httpServer, "GraphQL server")
}

// StartMetrics listens on the configured metrics port and serves Prometheus metrics until ctx is
// done. It returns immediately if the metrics port is 0.
func (s *Server) StartMetrics(ctx context.Context) error {
	if s.cfg.MetricsPort == 0 {
		log.Info().Msg("metrics server disabled")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(RouteMetrics, promhttp.Handler())

	metricsServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.MetricsPort),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().
		Int("port", s.cfg.MetricsPort).
		Msg("starting metrics server")

	return s.serve(ctx, metricsServer, "metrics server")
}

func (s *Server) serve(ctx context.Context, httpServer *http.Server, name string) error {
	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msgf("shutting down %s", name)
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("%s error: %w", name, err)
	}
}
