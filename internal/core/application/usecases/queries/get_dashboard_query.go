package queries

import (
	"errors"

	"pizzacrm/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery computes the summary numbers shown on the console's main
// screen: order pipeline counts, revenue from completed orders, courier
// availability, and menu size.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query to compute the dashboard summary.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse aggregates store-wide numbers.
// Revenue counts completed orders only: cancelled and in-flight orders do not
// contribute.
type GetDashboardQueryResponse struct {
	TotalOrders     int
	PendingOrders   int
	ActiveOrders    int
	CompletedOrders int
	Revenue         float64
	TotalCouriers   int
	FreeCouriers    int
	BusyCouriers    int
	TotalPizzas     int
	AvailablePizzas int
}
