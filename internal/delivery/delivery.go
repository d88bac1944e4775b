// Package delivery defines the transport-agnostic entry points of the service.
package delivery

import "context"

// Delivery is a long-running inbound transport such as the HTTP API.
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
