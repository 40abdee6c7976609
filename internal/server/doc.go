// Package server runs the gate's HTTP server.
//
// It owns the server lifecycle: listening, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
