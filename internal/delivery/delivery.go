package delivery

import "context"

// Delivery is a transport entry point (HTTP API, worker) that serves until
// the context is cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
