// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read stored rows directly, bypassing the domain aggregates,
// and shape them into read models for the presentation layer.
package queries

import (
	"context"
	"time"

	"pizzacrm/internal/core/domain/model/kernel"
)

// Row types mirror the stored form of each entity. The storage adapter
// implements the reader interfaces below by returning rows in insertion
// order, which is the display order everywhere in the console.
type (
	// PizzaRow is the stored form of a catalog pizza.
	PizzaRow struct {
		ID          kernel.UUID
		Name        string
		Description string
		Price       float64
		Image       string
		Available   bool
	}

	// CourierRow is the stored form of a roster courier.
	CourierRow struct {
		ID             kernel.UUID
		Name           string
		Phone          string
		Status         string
		CurrentOrderID *kernel.UUID
	}

	// OrderItemRow is the stored form of one order line.
	OrderItemRow struct {
		PizzaID   kernel.UUID
		PizzaName string
		Quantity  int
		Price     float64
	}

	// OrderRow is the stored form of a customer order.
	OrderRow struct {
		ID              kernel.UUID
		CustomerName    string
		CustomerPhone   string
		CustomerAddress string
		Items           []OrderItemRow
		Total           float64
		Status          string
		CourierID       *kernel.UUID
		CourierName     string
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}
)

// Reader interfaces are implemented by the storage adapter.
type (
	// PizzaReader provides raw read access to stored pizzas.
	PizzaReader interface {
		ReadPizzas(ctx context.Context) ([]PizzaRow, error)
	}

	// CourierReader provides raw read access to stored couriers.
	CourierReader interface {
		ReadCouriers(ctx context.Context) ([]CourierRow, error)
	}

	// OrderReader provides raw read access to stored orders.
	OrderReader interface {
		ReadOrders(ctx context.Context) ([]OrderRow, error)
	}
)
