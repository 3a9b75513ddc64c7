package queries

import (
	"context"
)

// GetAllOrdersQueryHandler retrieves orders from the store.
// Rows come back in insertion order, which is creation order.
type GetAllOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
// Requires an OrderReader backed by the storage adapter.
func NewGetAllOrdersQueryHandler(reader OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{reader: reader}
}

// Handle executes the query to retrieve all orders.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.ReadOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0, len(rows))
	for _, row := range rows {
		items := make([]GetAllOrdersQueryItem, 0, len(row.Items))
		for _, item := range row.Items {
			items = append(items, GetAllOrdersQueryItem{
				PizzaID:   item.PizzaID,
				PizzaName: item.PizzaName,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		orders = append(orders, GetAllOrdersQueryResponse{
			ID:              row.ID,
			CustomerName:    row.CustomerName,
			CustomerPhone:   row.CustomerPhone,
			CustomerAddress: row.CustomerAddress,
			Items:           items,
			Total:           row.Total,
			Status:          row.Status,
			CourierID:       row.CourierID,
			CourierName:     row.CourierName,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return orders, nil
}
