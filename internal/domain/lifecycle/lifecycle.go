// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds server startup pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
