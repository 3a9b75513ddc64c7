package queries

import (
	"context"
)

// GetMenuQueryHandler retrieves the catalog from the store.
// Rows come back in insertion order, matching the console display order.
type GetMenuQueryHandler struct {
	reader PizzaReader
}

// NewGetMenuQueryHandler creates a handler for menu retrieval queries.
// Requires a PizzaReader backed by the storage adapter.
func NewGetMenuQueryHandler(reader PizzaReader) GetMenuQueryHandler {
	return GetMenuQueryHandler{reader: reader}
}

// Handle executes the query to retrieve the full menu.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.ReadPizzas(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0, len(rows))
	for _, row := range rows {
		menu = append(menu, GetMenuQueryResponse{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			Image:       row.Image,
			Available:   row.Available,
		})
	}

	return menu, nil
}
