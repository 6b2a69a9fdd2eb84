// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
