package queries

import (
	"context"
)

// GetAllCouriersQueryHandler retrieves the roster from the store.
// Rows come back in insertion order, matching the console display order.
type GetAllCouriersQueryHandler struct {
	reader CourierReader
}

// NewGetAllCouriersQueryHandler creates a handler for roster retrieval queries.
// Requires a CourierReader backed by the storage adapter.
func NewGetAllCouriersQueryHandler(reader CourierReader) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{reader: reader}
}

// Handle executes the query to retrieve all couriers.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.ReadCouriers(ctx)
	if err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0, len(rows))
	for _, row := range rows {
		couriers = append(couriers, GetAllCouriersQueryResponse{
			ID:             row.ID,
			Name:           row.Name,
			Phone:          row.Phone,
			Status:         row.Status,
			CurrentOrderID: row.CurrentOrderID,
		})
	}

	return couriers, nil
}
