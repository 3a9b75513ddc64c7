package queries

import (
	"context"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/order"
)

// GetDashboardQueryHandler aggregates rows from all three stores into the
// dashboard summary. Counting happens here, on raw rows, not in the domain:
// the dashboard is a pure read model.
type GetDashboardQueryHandler struct {
	pizzas   PizzaReader
	couriers CourierReader
	orders   OrderReader
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires readers for all three entity stores.
func NewGetDashboardQueryHandler(pizzas PizzaReader, couriers CourierReader, orders OrderReader) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		pizzas:   pizzas,
		couriers: couriers,
		orders:   orders,
	}
}

// Handle executes the query and computes the summary numbers.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse

	orderRows, err := h.orders.ReadOrders(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	response.TotalOrders = len(orderRows)
	for _, row := range orderRows {
		switch row.Status {
		case order.StatusPending.String():
			response.PendingOrders++
			response.ActiveOrders++
		case order.StatusCompleted.String():
			response.CompletedOrders++
			response.Revenue += row.Total
		case order.StatusCancelled.String():
			// final but revenue-free
		default:
			response.ActiveOrders++
		}
	}

	courierRows, err := h.couriers.ReadCouriers(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	response.TotalCouriers = len(courierRows)
	for _, row := range courierRows {
		if row.Status == courier.StatusBusy.String() {
			response.BusyCouriers++
		} else {
			response.FreeCouriers++
		}
	}

	pizzaRows, err := h.pizzas.ReadPizzas(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	response.TotalPizzas = len(pizzaRows)
	for _, row := range pizzaRows {
		if row.Available {
			response.AvailablePizzas++
		}
	}

	return response, nil
}
