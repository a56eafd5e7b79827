package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The collection keeps insertion order with the newest order first;
// replacing an order keeps its original position.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, placing it at the
	// front of the collection.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order with the same identifier in
	// place. Updating an identifier that is not present is a no-op.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes the order with the given identifier. Removing an
	// identifier that is not present is a no-op.
	Remove(ctx context.Context, id kernel.OrderID) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every stored order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// LastIssuedID returns the highest identifier handed out so far.
	// The second result is false while the collection has never issued
	// one; removals do not lower it.
	LastIssuedID(ctx context.Context) (kernel.OrderID, bool, error)
}
