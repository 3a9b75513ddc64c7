package memory

import (
	"context"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
	"pizzacrm/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on a state snapshot.
type OrderRepository struct {
	state *state
}

// Add stores a new order. Returns a conflict error if the id is taken.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.orders[key]; ok {
		return errs.NewConflictError("order", "already exists")
	}

	r.state.orders[key] = orderFromDomain(aggregate)
	r.state.orderSeq = append(r.state.orderSeq, key)
	return nil
}

// Update overwrites an existing order, keeping its position in the sequence.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.orders[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}

	r.state.orders[key] = orderFromDomain(aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.state.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return orderToDomain(dto)
}

// GetAll retrieves every order in insertion order, which is creation order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(r.state.orderSeq))
	for _, key := range r.state.orderSeq {
		aggregate, err := orderToDomain(r.state.orders[key])
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate)
	}
	return out, nil
}

// Remove deletes an order by id.
func (r *OrderRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	if _, ok := r.state.orders[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}

	delete(r.state.orders, key)
	r.state.orderSeq = removeKey(r.state.orderSeq, key)
	return nil
}
