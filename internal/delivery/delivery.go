// Package delivery defines the entry points that expose the usecases.
package delivery

import "context"

// Delivery is a server started by the application after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
