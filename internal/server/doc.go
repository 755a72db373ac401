// Package server runs the HTTP transport described by the "webserver"
// section of the server-level configuration.
//
// It provides startup, TLS (via the section's server_cert/server_key
// paths), signal handling, and graceful shutdown. The routes it serves are
// supplied by the caller; the package itself only contributes liveness and
// readiness probes.
package server
