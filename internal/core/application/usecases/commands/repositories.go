// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and storage.
package commands

import (
	"context"

	"pizzacrm/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PizzaRepoFactory provides access to the pizza repository within a transaction.
	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PizzaUoW manages transactions for catalog-only operations.
	// Used when commands only modify pizza aggregates.
	PizzaUoW interface {
		TxManager
		PizzaRepoFactory
	}

	// PizzaUoWFactory creates new catalog unit of work instances.
	PizzaUoWFactory interface {
		Create() PizzaUoW
	}

	// CourierUoW manages transactions for roster-only operations.
	// Used when commands only modify courier aggregates.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new roster unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderCatalogUoW manages transactions that read the catalog while writing
	// orders. Used by order creation, which snapshots pizza data into lines.
	OrderCatalogUoW interface {
		TxManager
		PizzaRepoFactory
		OrderRepoFactory
	}

	// OrderCatalogUoWFactory creates new order/catalog unit of work instances.
	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// UoW manages transactions across both order and courier aggregates.
	// Used by the coordinator commands that must mutate an order and its
	// couriers as one atomic step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
