// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-oidc-provider/internal/config"
	"github.com/MKhiriev/go-oidc-provider/internal/logger"
)

// Server runs the transport described by the configuration's webserver
// subtree until a termination signal arrives.
type Server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the server from the webserver subtree of a built
// [config.Configuration]. The handler carries the routes to serve;
// [BaseRouter] provides a starting point.
func NewServer(web config.RawConfig, handler http.Handler, log *logger.Logger) (*Server, error) {
	log.Info().Msg("creating new server...")

	httpSrv, err := newHTTPServer(web, handler, log)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: httpSrv,
		logger:     log,
	}, nil
}

// RunServer launches the HTTP server and blocks until SIGTERM, SIGINT, or
// SIGQUIT, then shuts it down gracefully.
func (s *Server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown stops the HTTP server, waiting for in-flight requests.
func (s *Server) Shutdown() {
	s.httpServer.Shutdown()
}
