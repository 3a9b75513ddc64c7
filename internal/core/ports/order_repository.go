package ports

import (
	"context"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Remove deletes the order with the given identifier.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Remove(ctx context.Context, id kernel.UUID) error
}
