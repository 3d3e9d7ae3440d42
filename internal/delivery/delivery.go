// Package delivery holds the entry points that drive the usecases: HTTP servers, queue
// consumers and scheduled jobs.
package delivery

import "context"

// Delivery is a long running entry point started by the application.
type Delivery interface {
	// Serve blocks until the delivery stops.
	Serve(ctx context.Context) error
}
