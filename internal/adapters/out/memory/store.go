// Package memory provides the in-memory implementation of the storage ports.
//
// The store keeps every entity as a plain DTO in maps keyed by id, with a
// separate slice per entity preserving insertion order, which is the display
// order everywhere in the console. Transactions work on a deep copy of the
// whole state: Begin takes the store lock and snapshots, repositories mutate
// the snapshot, Commit swaps the snapshot in, Rollback throws it away. The
// lock is held from Begin to Commit/Rollback, so commands serialize and a
// half-applied command can never be observed.
package memory

import (
	"context"
	"sync"

	"pizzacrm/internal/core/application/usecases/queries"
	"pizzacrm/internal/core/domain/model/kernel"
)

// Store is the root of the in-memory state. It hands out units of work for
// commands and implements the query reader interfaces directly, bypassing the
// domain aggregates the same way a SQL read model would.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// state is one consistent snapshot of everything the store holds.
type state struct {
	pizzas   map[string]pizzaDTO
	pizzaSeq []string

	couriers   map[string]courierDTO
	courierSeq []string

	orders   map[string]orderDTO
	orderSeq []string
}

func newState() *state {
	return &state{
		pizzas:   make(map[string]pizzaDTO),
		couriers: make(map[string]courierDTO),
		orders:   make(map[string]orderDTO),
	}
}

// clone deep-copies the state so a transaction can mutate it freely without
// the base state observing anything until commit.
func (s *state) clone() *state {
	out := &state{
		pizzas:     make(map[string]pizzaDTO, len(s.pizzas)),
		pizzaSeq:   append([]string(nil), s.pizzaSeq...),
		couriers:   make(map[string]courierDTO, len(s.couriers)),
		courierSeq: append([]string(nil), s.courierSeq...),
		orders:     make(map[string]orderDTO, len(s.orders)),
		orderSeq:   append([]string(nil), s.orderSeq...),
	}

	for key, dto := range s.pizzas {
		out.pizzas[key] = dto
	}
	for key, dto := range s.couriers {
		out.couriers[key] = dto.clone()
	}
	for key, dto := range s.orders {
		out.orders[key] = dto.clone()
	}

	return out
}

func removeKey(seq []string, key string) []string {
	for i, k := range seq {
		if k == key {
			return append(seq[:i], seq[i+1:]...)
		}
	}
	return seq
}

// ReadPizzas returns all stored pizzas in insertion order.
// Implements queries.PizzaReader.
func (s *Store) ReadPizzas(_ context.Context) ([]queries.PizzaRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]queries.PizzaRow, 0, len(s.state.pizzaSeq))
	for _, key := range s.state.pizzaSeq {
		dto := s.state.pizzas[key]
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		rows = append(rows, queries.PizzaRow{
			ID:          id,
			Name:        dto.Name,
			Description: dto.Description,
			Price:       dto.Price,
			Image:       dto.Image,
			Available:   dto.Available,
		})
	}

	return rows, nil
}

// ReadCouriers returns all stored couriers in insertion order.
// Implements queries.CourierReader.
func (s *Store) ReadCouriers(_ context.Context) ([]queries.CourierRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]queries.CourierRow, 0, len(s.state.courierSeq))
	for _, key := range s.state.courierSeq {
		dto := s.state.couriers[key]
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		var currentOrderID *kernel.UUID
		if dto.CurrentOrderID != nil {
			orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
			if orderErr != nil {
				return nil, orderErr
			}
			currentOrderID = &orderID
		}

		rows = append(rows, queries.CourierRow{
			ID:             id,
			Name:           dto.Name,
			Phone:          dto.Phone,
			Status:         dto.Status,
			CurrentOrderID: currentOrderID,
		})
	}

	return rows, nil
}

// ReadOrders returns all stored orders in insertion order.
// Implements queries.OrderReader.
func (s *Store) ReadOrders(_ context.Context) ([]queries.OrderRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]queries.OrderRow, 0, len(s.state.orderSeq))
	for _, key := range s.state.orderSeq {
		dto := s.state.orders[key]
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		items := make([]queries.OrderItemRow, 0, len(dto.Items))
		for _, item := range dto.Items {
			pizzaID, itemErr := kernel.UUIDFromBytes(item.PizzaID[:])
			if itemErr != nil {
				return nil, itemErr
			}
			items = append(items, queries.OrderItemRow{
				PizzaID:   pizzaID,
				PizzaName: item.PizzaName,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		var courierID *kernel.UUID
		if dto.CourierID != nil {
			cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
			if courierErr != nil {
				return nil, courierErr
			}
			courierID = &cID
		}

		rows = append(rows, queries.OrderRow{
			ID:              id,
			CustomerName:    dto.CustomerName,
			CustomerPhone:   dto.CustomerPhone,
			CustomerAddress: dto.CustomerAddress,
			Items:           items,
			Total:           dto.Total,
			Status:          dto.Status,
			CourierID:       courierID,
			CourierName:     dto.CourierName,
			CreatedAt:       dto.CreatedAt,
			UpdatedAt:       dto.UpdatedAt,
		})
	}

	return rows, nil
}
