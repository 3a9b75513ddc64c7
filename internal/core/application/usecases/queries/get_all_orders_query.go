package queries

import (
	"errors"
	"time"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its line items and courier
// snapshot, in creation order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryItem represents one order line in the read model.
type GetAllOrdersQueryItem struct {
	PizzaID   kernel.UUID
	PizzaName string
	Quantity  int
	Price     float64
}

// GetAllOrdersQueryResponse represents one order in the read model.
// CourierID and CourierName carry the assignment snapshot; both are zero for
// orders never assigned to a courier.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []GetAllOrdersQueryItem
	Total           float64
	Status          string
	CourierID       *kernel.UUID
	CourierName     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
