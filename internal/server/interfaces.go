package server

import "context"

// Server defines the lifecycle contract of the gate server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early with an error if serving fails.
	Run(ctx context.Context) error

	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is
	// received.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
