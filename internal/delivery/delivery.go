// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a transport endpoint (e.g. the HTTP server) started by the
// composition root and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
