package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client runtime and blocks until ctx is cancelled.
	Run(ctx context.Context) error
}
