// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is one externally reachable server. Implementations are collected
// by Fx under the "deliveries" group and started together at boot.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
