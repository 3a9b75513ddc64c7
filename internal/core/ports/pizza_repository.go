package ports

import (
	"context"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/pizza"
)

// PizzaRepository defines the storage contract for catalog pizza aggregates.
type PizzaRepository interface {
	// Add stores a new pizza aggregate.
	// The pizza must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *pizza.Pizza) error

	// Update stores changes to an existing pizza aggregate.
	// Returns errs.ObjectNotFoundError if the pizza does not exist.
	Update(ctx context.Context, aggregate *pizza.Pizza) error

	// Get retrieves a pizza aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if the pizza does not exist.
	Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error)

	// GetAll retrieves every pizza in insertion order.
	GetAll(ctx context.Context) ([]*pizza.Pizza, error)

	// Remove deletes the pizza with the given identifier.
	// Returns errs.ObjectNotFoundError if the pizza does not exist.
	Remove(ctx context.Context, id kernel.UUID) error
}
