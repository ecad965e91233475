// Package ports defines the persistence contracts between the application
// core and its adapters.
package ports

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created once, re-read by the admin panel, and updated only
// through whole-row status overwrites. Deletion is deliberately absent.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
