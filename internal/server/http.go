// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-oidc-provider/internal/config"
	"github.com/MKhiriev/go-oidc-provider/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	certFile string
	keyFile  string
	logger   *logger.Logger
}

// newHTTPServer builds the listener from the webserver subtree. Recognized
// keys: "domain" (listen host, default all interfaces), "port" (required),
// "server_cert"/"server_key" (TLS material, both already base-path
// resolved by the configuration engine).
func newHTTPServer(web config.RawConfig, handler http.Handler, log *logger.Logger) (*httpServer, error) {
	port := intFromTree(web, "port")
	if port == 0 {
		return nil, errNoListenPort
	}

	host, _ := web["domain"].(string)
	certFile, _ := web["server_cert"].(string)
	keyFile, _ := web["server_key"].(string)

	return &httpServer{
		server: &http.Server{
			Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		certFile: certFile,
		keyFile:  keyFile,
		logger:   log,
	}, nil
}

func (h *httpServer) RunServer() {
	var err error
	if h.certFile != "" && h.keyFile != "" {
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		err = h.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}

// intFromTree reads a numeric tree value, accepting the int produced by the
// YAML decoder and the float64 produced by the JSON decoder.
func intFromTree(web config.RawConfig, key string) int {
	switch n := web[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
