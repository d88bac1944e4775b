// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, e.g. the database ping or
// the HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
