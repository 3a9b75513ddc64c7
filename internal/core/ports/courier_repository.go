package ports

import (
	"context"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/kernel"
)

// CourierRepository defines the storage contract for roster courier
// aggregates, including their availability state and order back-reference.
type CourierRepository interface {
	// Add stores a new courier aggregate.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update stores changes to an existing courier aggregate.
	// Returns errs.ObjectNotFoundError if the courier does not exist.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if the courier does not exist.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier in insertion order.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllFree retrieves every free courier in insertion order.
	// Used when offering assignment candidates to staff.
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)

	// Remove deletes the courier with the given identifier.
	// Returns errs.ObjectNotFoundError if the courier does not exist.
	Remove(ctx context.Context, id kernel.UUID) error
}
